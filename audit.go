// ABOUTME: Compares the key in each file's tags with the key in its filename
// ABOUTME: Reads tags concurrently on the worker pool, results land in per-file slots

package main

import (
	"context"
	"fmt"
	"strings"

	"song-catalog/camelot"
	"song-catalog/catalog"
	"song-catalog/pool"
)

// auditFinding is a variant whose tag key disagrees with its filename key
type auditFinding struct {
	Path    string
	NameKey string
	TagKey  string
}

// AuditTags reads every variant's tag key on a pool of workers and returns the
// variants whose tag key differs from their edition's key. Files without a
// key tag or with unreadable tags are skipped. Cancelling ctx stops reading
// and returns ctx's error.
func AuditTags(ctx context.Context, c *catalog.Collection, workers int, readKey func(path string) (string, error)) ([]auditFinding, error) {
	type job struct {
		path string
		key  string
	}

	var jobs []job

	for _, e := range c.Editions() {
		for _, v := range e.Variants {
			jobs = append(jobs, job{path: v.Path, key: e.Key})
		}
	}

	tagKeys := make([]string, len(jobs))

	p := pool.New(workers)
	defer p.Close()

	for i, j := range jobs {
		if ctx.Err() != nil {
			break
		}

		p.Submit(func() {
			if ctx.Err() != nil {
				return
			}

			key, err := readKey(j.path)
			if err != nil {
				debugf("[AUDIT] %s: %v", j.path, err)
				return
			}

			tagKeys[i] = key
		})
	}

	p.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("tag audit interrupted: %w", err)
	}

	var findings []auditFinding

	for i, j := range jobs {
		if tagKeys[i] == "" || sameKey(tagKeys[i], j.key) {
			continue
		}

		findings = append(findings, auditFinding{Path: j.path, NameKey: j.key, TagKey: tagKeys[i]})
	}

	return findings, nil
}

func sameKey(a, b string) bool {
	return strings.EqualFold(camelot.Normalize(a), camelot.Normalize(b))
}
