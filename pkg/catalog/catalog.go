// Package catalog holds storage objects and global parameters of a
// layout optimization. A Catalog is created once and is read-only
// afterwards, so it can be shared by concurrent optimization runs.
package catalog

import (
	"fmt"
	"strings"

	"github.com/gnames/gnuuid"
)

// Object is a storage object to be placed on disk.
type Object struct {
	// ID is the identifier of the object. IDs do not have to be
	// contiguous.
	ID int `json:"id" yaml:"id"`

	// Size of the object in capacity units (GB in the usual data).
	Size float64 `json:"size" yaml:"size"`

	// AccessFrequency is a relative hotness of the object in [0,1].
	AccessFrequency float64 `json:"accessFrequency" yaml:"access_frequency"`

	// OriginalPosition is the 1-based position of the object at load
	// time.
	OriginalPosition int `json:"originalPosition" yaml:"original_position"`
}

// Catalog is an ordered collection of objects together with the disk
// space budget and the token count.
type Catalog struct {
	objects    []Object
	diskSpace  float64
	tokenCount int
}

// New creates a Catalog from objects in their load order.
// OriginalPosition of every object is set to its 1-based index in objs,
// the slice is copied.
func New(objs []Object, diskSpace float64, tokenCount int) *Catalog {
	res := &Catalog{
		objects:    make([]Object, len(objs)),
		diskSpace:  diskSpace,
		tokenCount: tokenCount,
	}
	for i, v := range objs {
		v.OriginalPosition = i + 1
		res.objects[i] = v
	}
	return res
}

// Len returns the number of objects.
func (c *Catalog) Len() int {
	return len(c.objects)
}

// Object returns the object at index i of the load order.
func (c *Catalog) Object(i int) Object {
	return c.objects[i]
}

// Objects returns a copy of all objects in load order.
func (c *Catalog) Objects() []Object {
	res := make([]Object, len(c.objects))
	copy(res, c.objects)
	return res
}

// DiskSpace returns the capacity budget.
func (c *Catalog) DiskSpace() float64 {
	return c.diskSpace
}

// TokenCount returns the token count parameter.
func (c *Catalog) TokenCount() int {
	return c.tokenCount
}

// TotalSize returns the sum of sizes of all objects.
func (c *Catalog) TotalSize() float64 {
	var res float64
	for _, v := range c.objects {
		res += v.Size
	}
	return res
}

// Fingerprint returns UUIDv5 calculated from the parameters and the
// objects of the catalog. Catalogs with the same content in the same
// order have the same fingerprint.
func (c *Catalog) Fingerprint() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%g|%d", c.diskSpace, c.tokenCount)
	for _, v := range c.objects {
		fmt.Fprintf(&sb, "|%d:%g:%g", v.ID, v.Size, v.AccessFrequency)
	}
	return gnuuid.New(sb.String()).String()
}
