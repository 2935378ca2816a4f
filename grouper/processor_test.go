package grouper

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProgress records progress callbacks, safely across workers.
type countingProgress struct {
	mu         sync.Mutex
	total      int
	increments int
	done       bool
}

func (c *countingProgress) Start(total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.total = total
}

func (c *countingProgress) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.increments++
}

func (c *countingProgress) Done() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.done = true
}

func TestProcess_GroupsIdenticalStructures(t *testing.T) {
	docs := []Document{
		{Path: "a.xml", Content: []byte(`<book id="1"><title>A</title></book>`)},
		{Path: "b.xml", Content: []byte(`<book id="2"><title>B</title></book>`)},
	}

	result := NewProcessor().Process(context.Background(), docs)

	assert.Equal(t, 2, result.TotalFiles)
	assert.Equal(t, 0, result.FailedFiles)
	assert.Equal(t, 1, result.UniqueStructures)
	require.Len(t, result.Groups, 1)
	assert.Equal(t, 2, result.Groups[0].Count)
}

func TestProcess_DistinctStructuresSplit(t *testing.T) {
	docs := []Document{
		{Path: "a.xml", Content: []byte(`<book><title>X</title></book>`)},
		{Path: "b.xml", Content: []byte(`<article><heading>X</heading></article>`)},
	}

	result := NewProcessor().Process(context.Background(), docs)

	assert.Equal(t, 2, result.UniqueStructures)
	require.Len(t, result.Groups, 2)
	for _, group := range result.Groups {
		assert.Equal(t, 1, group.Count)
	}
}

func TestProcess_RepeatedSiblingsMergeInSkeleton(t *testing.T) {
	docs := []Document{
		{Path: "a.xml", Content: []byte(`<book><chapter/><chapter/></book>`)},
	}

	result := NewProcessor().Process(context.Background(), docs)

	require.Len(t, result.Groups, 1)
	merged := result.Groups[0].Skeleton.Merged
	assert.Len(t, merged.Children, 1)
	assert.Contains(t, merged.Children, "chapter")
}

func TestProcess_MalformedDocumentSkippedAndCounted(t *testing.T) {
	docs := []Document{
		{Path: "good.xml", Content: []byte(`<book><title>A</title></book>`)},
		{Path: "bad.xml", Content: []byte(`<not>closed`)},
		{Path: "good2.xml", Content: []byte(`<book><title>B</title></book>`)},
	}

	result := NewProcessor().Process(context.Background(), docs)

	assert.Equal(t, 3, result.TotalFiles)
	assert.Equal(t, 1, result.FailedFiles)
	assert.Equal(t, 1, result.UniqueStructures)
	require.Len(t, result.Groups, 1)
	assert.Equal(t, 2, result.Groups[0].Count)
	assert.NotContains(t, result.Groups[0].Files, "bad.xml")
}

func TestProcess_Conservation(t *testing.T) {
	var docs []Document
	for i := range 40 {
		var content string
		switch i % 4 {
		case 0:
			content = `<book><title>X</title></book>`
		case 1:
			content = `<book><title>X</title><index/></book>`
		case 2:
			content = `<list><item/></list>`
		default:
			content = `<broken` // parse failure
		}
		docs = append(docs, Document{Path: fmt.Sprintf("doc%02d.xml", i), Content: []byte(content)})
	}

	p := NewProcessor()
	p.Workers = 4
	result := p.Process(context.Background(), docs)

	assert.Equal(t, 40, result.TotalFiles)
	assert.Equal(t, 10, result.FailedFiles)

	grouped := 0
	for _, group := range result.Groups {
		grouped += group.Count
	}
	assert.Equal(t, result.TotalFiles-result.FailedFiles, grouped)
}

func TestProcess_ValueDifferencesAreInvisible(t *testing.T) {
	docs := []Document{
		{Path: "a.xml", Content: []byte(`<doc lang="en" id="1"><p n="1">alpha</p></doc>`)},
		{Path: "b.xml", Content: []byte(`<doc id="2" lang="fr"><p n="99">omega</p><p>extra</p></doc>`)},
	}

	result := NewProcessor().Process(context.Background(), docs)

	// Same element names, same attribute key sets at the merged level,
	// same nesting: one group.
	assert.Equal(t, 1, result.UniqueStructures)
}

func TestProcess_ProgressNotifications(t *testing.T) {
	docs := []Document{
		{Path: "a.xml", Content: []byte(`<a/>`)},
		{Path: "b.xml", Content: []byte(`<broken`)},
		{Path: "c.xml", Content: []byte(`<c/>`)},
	}

	progress := &countingProgress{}
	p := NewProcessor()
	p.Progress = progress
	p.Process(context.Background(), docs)

	assert.Equal(t, 3, progress.total)
	// Failed documents still count toward progress.
	assert.Equal(t, 3, progress.increments)
	assert.True(t, progress.done)
}

func TestProcess_WorkerCounts(t *testing.T) {
	var docs []Document
	for i := range 25 {
		docs = append(docs, Document{
			Path:    fmt.Sprintf("doc%02d.xml", i),
			Content: []byte(`<book><chapter n="1"/><chapter n="2"/></book>`),
		})
	}

	for _, workers := range []int{0, 1, 2, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			p := NewProcessor()
			p.Workers = workers
			result := p.Process(context.Background(), docs)

			assert.Equal(t, 25, result.TotalFiles)
			assert.Equal(t, 1, result.UniqueStructures)
			assert.Equal(t, 25, result.Groups[0].Count)
		})
	}
}

func TestProcessFiles_ReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.xml")
	pathB := filepath.Join(dir, "b.xml")
	require.NoError(t, os.WriteFile(pathA, []byte(`<book><title>A</title></book>`), 0o600))
	require.NoError(t, os.WriteFile(pathB, []byte(`<book><title>B</title></book>`), 0o600))

	result := NewProcessor().ProcessFiles(context.Background(), []string{pathA, pathB})

	assert.Equal(t, 2, result.TotalFiles)
	assert.Equal(t, 1, result.UniqueStructures)
}

func TestProcessFiles_UnreadableFileSkipped(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.xml")
	require.NoError(t, os.WriteFile(good, []byte(`<book/>`), 0o600))
	missing := filepath.Join(dir, "missing.xml")

	result := NewProcessor().ProcessFiles(context.Background(), []string{good, missing})

	assert.Equal(t, 2, result.TotalFiles)
	assert.Equal(t, 1, result.FailedFiles)
	assert.Equal(t, 1, result.UniqueStructures)
}
