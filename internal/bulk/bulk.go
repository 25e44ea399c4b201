// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package bulk splits generated batches into chunks for an external loader
// and reports per-chunk progress back to the caller.
package bulk

import (
	"context"

	"github.com/dacolabs/esgen/internal/generate"
)

// Progress describes the state of a bulk run after one chunk.
type Progress struct {
	Processed  int
	Total      int
	Succeeded  int
	Failed     int
	ChunkIndex int
	ChunkCount int
}

// Sender delivers one chunk to its destination. Batching retries are the
// sender's concern, not this package's.
type Sender func(ctx context.Context, docs []generate.Document) error

// ProgressFunc receives a Progress snapshot after every chunk.
type ProgressFunc func(Progress)

// DefaultChunkSize is used when a caller passes a non-positive chunk size.
const DefaultChunkSize = 500

// Chunks splits docs into consecutive slices of at most size documents.
func Chunks(docs []generate.Document, size int) [][]generate.Document {
	if size <= 0 {
		size = DefaultChunkSize
	}
	var out [][]generate.Document
	for start := 0; start < len(docs); start += size {
		end := start + size
		if end > len(docs) {
			end = len(docs)
		}
		out = append(out, docs[start:end])
	}
	return out
}

// Run sends docs chunk by chunk. A failing chunk counts its documents as
// failed and the run continues; only context cancellation stops it early.
// onProgress may be nil.
func Run(ctx context.Context, docs []generate.Document, chunkSize int, send Sender, onProgress ProgressFunc) (Progress, error) {
	chunks := Chunks(docs, chunkSize)

	p := Progress{Total: len(docs), ChunkCount: len(chunks)}
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return p, err
		}

		p.ChunkIndex = i
		if err := send(ctx, chunk); err != nil {
			p.Failed += len(chunk)
		} else {
			p.Succeeded += len(chunk)
		}
		p.Processed += len(chunk)

		if onProgress != nil {
			onProgress(p)
		}
	}
	return p, nil
}
