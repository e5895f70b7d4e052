package deps

import (
	"context"
	"maps"
	"slices"
)

// Builder resolves the transitive dependency graph of a root package.
//
// Packages are fetched one at a time in breadth-first order. Every name is
// fetched at most once, which also terminates on circular dependencies.
// A Builder is single use and not safe for concurrent use.
type Builder struct {
	fetcher Fetcher
	opts    Options

	packages  Packages
	queue     []queueItem
	head      int
	requested map[string]bool
	fetches   int
}

type queueItem struct {
	name   string
	parent string // empty for the root
}

// NewBuilder creates a Builder that fetches packages through f.
func NewBuilder(f Fetcher, opts Options) *Builder {
	return &Builder{
		fetcher:   f,
		opts:      opts.WithDefaults(),
		packages:  make(Packages),
		requested: make(map[string]bool),
	}
}

// Run records root, then drains the queue of pending dependencies.
//
// The first fetch error aborts the run; no partial result is returned.
func (b *Builder) Run(ctx context.Context, root *Info) (Packages, error) {
	b.process(queueItem{name: root.Name}, root)

	for b.head < len(b.queue) {
		item := b.queue[b.head]
		b.queue[b.head] = queueItem{}
		b.head++

		if b.resolved(item.name) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		b.requested[item.name] = true
		b.fetches++
		b.opts.Logger("Request %s", b.location(item.name))
		info, err := b.fetcher.Fetch(ctx, item.name)
		if err != nil {
			return nil, err
		}
		b.process(item, info)
	}
	return b.packages, nil
}

// location names the request target: the fetcher's URL when it is a Locator,
// otherwise the package name.
func (b *Builder) location(name string) string {
	if l, ok := b.fetcher.(Locator); ok {
		return l.URL(name)
	}
	return name
}

// Fetches reports how many registry fetches the run issued.
func (b *Builder) Fetches() int { return b.fetches }

func (b *Builder) resolved(name string) bool {
	_, ok := b.packages[name]
	return ok || b.requested[name]
}

// process records info under its own name, marks the parent's edge to it as
// deep and queues its dependencies.
func (b *Builder) process(item queueItem, info *Info) {
	name := info.Name
	if name == "" {
		name = item.name
	}

	latest := LatestDependencies(info)
	names := slices.Sorted(maps.Keys(latest))
	edges := make([]Edge, len(names))
	for i, dep := range names {
		edges[i] = Edge{Name: dep}
	}

	b.packages[name] = &Record{Dependencies: edges, GitHub: RepositorySlug(info)}

	if item.parent != "" {
		if parent, ok := b.packages[item.parent]; ok {
			for i := range parent.Dependencies {
				if parent.Dependencies[i].Name == name {
					parent.Dependencies[i].Deep = true
				}
			}
		}
	}

	for _, dep := range names {
		b.queue = append(b.queue, queueItem{name: dep, parent: name})
	}
}
