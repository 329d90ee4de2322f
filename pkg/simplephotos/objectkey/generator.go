// Package objectkey provides bucket key generation strategies.
//
// Keys are opaque: a fresh random identifier with the original file
// extension preserved, so nothing in the bucket can collide with or
// overwrite an earlier upload.
package objectkey

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
)

// Generator defines the interface for bucket key generation strategies
type Generator interface {
	// GenerateKey creates a bucket key for the given original filename
	GenerateKey(originalName string) string
}

// RandomGenerator produces flat keys: a UUID plus the original extension.
// This is the default layout; the bucket has no directory structure.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) GenerateKey(originalName string) string {
	return uuid.NewString() + filepath.Ext(originalName)
}

// FolderedGenerator prefixes every key with a fixed folder component, for
// deployments that partition one bucket per owner folder.
type FolderedGenerator struct {
	Folder string
	Base   Generator
}

func NewFolderedGenerator(folder string) *FolderedGenerator {
	return &FolderedGenerator{
		Folder: folder,
		Base:   NewRandomGenerator(),
	}
}

func (g *FolderedGenerator) GenerateKey(originalName string) string {
	base := g.Base
	if base == nil {
		base = NewRandomGenerator()
	}
	return fmt.Sprintf("%s/%s", g.Folder, base.GenerateKey(originalName))
}

// CustomFuncGenerator allows users to provide their own key generation function
type CustomFuncGenerator struct {
	GenerateFunc func(originalName string) string
}

func NewCustomFuncGenerator(fn func(originalName string) string) *CustomFuncGenerator {
	return &CustomFuncGenerator{
		GenerateFunc: fn,
	}
}

func (g *CustomFuncGenerator) GenerateKey(originalName string) string {
	return g.GenerateFunc(originalName)
}

// NewRecommendedGenerator returns the generator used when none is configured
func NewRecommendedGenerator() Generator {
	return NewRandomGenerator()
}
