// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package tags

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"code.sajari.com/word2vec"

	"github.com/tomtom215/metagraphus/internal/logging"
	"github.com/tomtom215/metagraphus/internal/models"
)

// OtherCategory collects tags that score zero or below against every
// requested category
const OtherCategory = "other"

// similarityModel is the slice of the embedding model the categorizer needs.
// *word2vec.Model satisfies it; tests substitute a fixture.
type similarityModel interface {
	Cos(a, b word2vec.Expr) (float32, error)
}

// Categorizer assigns tags to caller-provided categories by embedding
// similarity
type Categorizer struct {
	model similarityModel
}

// NewCategorizer loads a binary word2vec model from path. Loading pulls the
// whole vocabulary into memory; a typical 300-dimension model takes a few
// seconds and a few GB.
func NewCategorizer(path string) (*Categorizer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open embeddings model: %w", err)
	}
	defer func() { _ = f.Close() }()

	model, err := word2vec.FromReader(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to load embeddings model %s: %w", path, err)
	}

	logging.Info().
		Str("path", path).
		Msg("Loaded word embeddings model")

	return &Categorizer{model: model}, nil
}

func newWithModel(model similarityModel) *Categorizer {
	return &Categorizer{model: model}
}

// Similarity returns the cosine similarity of two words. A word the model
// does not know scores 0 against everything.
func (c *Categorizer) Similarity(a, b string) float64 {
	sim, err := c.model.Cos(word2vec.Expr{a: 1}, word2vec.Expr{b: 1})
	if err != nil {
		var notFound word2vec.NotFoundError
		if !errors.As(err, &notFound) {
			logging.Debug().
				Err(err).
				Str("a", a).
				Str("b", b).
				Msg("Similarity lookup failed")
		}
		return 0
	}
	return float64(sim)
}

// Categorize assigns every distinct tag in the table to the category it is
// most similar to. Ties keep the earlier category in the request order. A
// tag that scores zero or below against all categories lands in "other"
// with similarity 0.
//
// The result is ordered by category (request order, "other" last) and
// within a category by first appearance in the table.
func (c *Categorizer) Categorize(records []models.Record, categories []string) []models.TagAssignment {
	tags := distinctTags(records)

	buckets := make(map[string][]models.TagAssignment, len(categories)+1)
	for _, tag := range tags {
		best := OtherCategory
		bestSim := 0.0
		for _, category := range categories {
			if sim := c.Similarity(tag, category); sim > bestSim {
				best, bestSim = category, sim
			}
		}
		buckets[best] = append(buckets[best], models.TagAssignment{
			Category:   best,
			Tag:        tag,
			Similarity: bestSim,
		})
	}

	ordered := make([]models.TagAssignment, 0, len(tags))
	emit := func(category string) {
		ordered = append(ordered, buckets[category]...)
		delete(buckets, category)
	}
	for _, category := range categories {
		emit(category)
	}
	emit(OtherCategory)
	return ordered
}

// distinctTags returns every tag of the table in first-seen order
func distinctTags(records []models.Record) []string {
	seen := make(map[string]bool)
	var tags []string
	for i := range records {
		for _, tag := range records[i].Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
