// Package compile is the library entry point (spec section 5): it wires
// together parse, hirbuild, collect, bind, block, project and query into
// the staged pipeline those packages individually only define a single
// unit's slice of. Grounded on crates/llmcc-core/src/lib.rs's
// CompileCtxt/CompileUnit/FileOrder re-exports for the top-level shape
// (context carrying shared resources, one unit per source file,
// caller-supplied ordering) and on spec section 5's six-stage barrier
// model for the worker-pool sequencing: no stage begins for any unit
// before the previous stage has finished for every unit. compile never
// walks a filesystem itself (the driver does that); it only accepts an
// already-loaded, already-ordered slice of source.File.
package compile

import (
	"context"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/viant/llmcc/arena"
	"github.com/viant/llmcc/block"
	"github.com/viant/llmcc/bind"
	"github.com/viant/llmcc/cerr"
	"github.com/viant/llmcc/collect"
	"github.com/viant/llmcc/hir"
	"github.com/viant/llmcc/hirbuild"
	"github.com/viant/llmcc/intern"
	"github.com/viant/llmcc/lang"
	"github.com/viant/llmcc/parse"
	"github.com/viant/llmcc/project"
	"github.com/viant/llmcc/query"
	"github.com/viant/llmcc/source"
	"github.com/viant/llmcc/symbol"
)

// Context carries the resources shared across every unit in one compile
// run: the language registry, the worker count, and a logger. It is never
// a package global (spec's ambient-logging rule); callers build one per
// run with NewContext and may override its logger with WithLogger.
type Context struct {
	Registry *lang.Registry
	Workers  int // 0 means runtime.GOMAXPROCS(0)
	logger   *zap.Logger
}

// NewContext builds a Context over registry with library-mode defaults:
// GOMAXPROCS workers and a no-op logger.
func NewContext(registry *lang.Registry) *Context {
	return &Context{Registry: registry, logger: zap.NewNop()}
}

// WithLogger returns a copy of c logging through logger instead of the
// default no-op, for a CLI driver (out of core scope) to wire in a
// development encoder.
func (c *Context) WithLogger(logger *zap.Logger) *Context {
	cp := *c
	cp.logger = logger
	return &cp
}

func (c *Context) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Result is the output of a completed compile run: the shared symbol
// table, the linked project graph, and a ready-to-use query engine over
// both. Failures is every per-unit error collected along the way (spec
// section 5: "per-unit failures are collected and reported at stage
// boundaries"); a file present in Failures has no corresponding unit in
// any later stage's output.
type Result struct {
	Table    *symbol.Table
	Project  *project.Graph
	Query    *query.Engine
	Failures []*cerr.Error
}

// unit threads one source.File through every stage, accumulating the
// artifacts (concrete tree, HIR tree, scope, block graph) each stage
// produces. A unit that fails a stage is dropped from every later stage
// (spec section 5) but its failure is still reported.
type unit struct {
	index      symbol.UnitIndex
	file       *source.File
	front      *lang.Front
	metrics    parse.Metrics
	tree       *hir.Tree
	scope      *symbol.Scope
	blockGraph *block.Graph
}

// Run executes the full pipeline over files in order, honoring spec
// section 5's barrier model: each of parse-and-HIR, collect, bind, and
// per-unit block-graph construction runs its units through a worker pool
// sized to c.workers() before the next stage starts; project-link and
// query/aggregate then run once over the whole unit set. files should
// already be in the driver's preferred processing order (spec section 4.3
// allows, but does not require, descending-size ordering to improve
// worker-pool wall time); compile neither sorts nor re-orders them.
func Run(ctx context.Context, c *Context, files []*source.File) (*Result, error) {
	units := make([]*unit, 0, len(files))
	for i, file := range files {
		ext := extOf(file.LogicalPath)
		front, ok := c.Registry.ForPath(ext)
		if !ok {
			c.logger.Warn("no front end for extension", zap.String("path", file.LogicalPath), zap.String("ext", ext))
			continue
		}
		units = append(units, &unit{index: symbol.UnitIndex(i), file: file, front: front})
	}

	result := &Result{Table: symbol.NewTable()}

	pool := arena.NewPool[hir.Node](0)
	live := c.runStage(ctx, units, result, func(u *unit) error {
		return c.parseAndBuildHIR(ctx, u, pool)
	})
	c.logger.Info("parse-and-HIR complete", zap.Int("units", len(live)), zap.Int("failed", len(units)-len(live)))

	var collectMu sync.Mutex
	nextScope := 1
	live = c.runStage(ctx, live, result, func(u *unit) error {
		// Collector pushes new scopes under the shared Globals scope, which
		// has no internal synchronization of its own (spec section 5: "the
		// global scope is protected by a lock; Collector writes inside its
		// critical section"), and scope ids must stay unique across units
		// (collect.New's nextScopeID contract), so collect runs one unit at
		// a time despite sharing this stage's worker pool with the other
		// stages.
		collectMu.Lock()
		defer collectMu.Unlock()
		coll := collect.New(result.Table, nextScope)
		u.scope = coll.Collect(u.tree, u.file, u.index, unitName(u.file))
		nextScope = coll.NextScopeID()
		return nil
	})
	c.logger.Info("collect complete", zap.Int("units", len(live)))

	live = c.runStage(ctx, live, result, func(u *unit) error {
		binder := bind.New(result.Table, u.front.Language)
		binder.Bind(u.tree, u.file, u.index)
		return nil
	})
	c.logger.Info("bind complete", zap.Int("units", len(live)))

	live = c.runStage(ctx, live, result, func(u *unit) error {
		u.blockGraph = block.Build(u.tree, result.Table, u.index)
		return nil
	})
	c.logger.Info("block-graph complete", zap.Int("units", len(live)))

	projUnits := make([]*project.Unit, 0, len(live))
	for _, u := range live {
		projUnits = append(projUnits, &project.Unit{Index: u.index, Tree: u.tree, File: u.file, Graph: u.blockGraph})
	}
	result.Project = project.Link(result.Table, projUnits)
	result.Query = query.New(result.Table, result.Project)
	c.logger.Info("project link and query engine ready", zap.Int("units", len(projUnits)))

	return result, nil
}

// runStage drives fn over units through a worker pool of c.workers()
// goroutines, collecting per-unit failures onto result.Failures and
// returning only the units that succeeded, in their original relative
// order, for the next stage to consume.
func (c *Context) runStage(ctx context.Context, units []*unit, result *Result, fn func(*unit) error) []*unit {
	failed := make([]bool, len(units))
	var failuresMu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers())
	for i, u := range units {
		i, u := i, u
		g.Go(func() error {
			if err := fn(u); err != nil {
				failed[i] = true
				ce, ok := err.(*cerr.Error)
				if !ok {
					ce = cerr.Wrap("compile.Run", cerr.InvariantViolation, err).WithUnit(u.file.LogicalPath)
				}
				failuresMu.Lock()
				result.Failures = append(result.Failures, ce)
				failuresMu.Unlock()
				c.logger.Warn("unit failed", zap.String("path", u.file.LogicalPath), zap.Error(err))
			}
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
				return nil
			}
		})
	}
	_ = g.Wait()

	live := make([]*unit, 0, len(units))
	for i, u := range units {
		if !failed[i] {
			live = append(live, u)
		}
	}
	return live
}

func (c *Context) parseAndBuildHIR(ctx context.Context, u *unit, pool *arena.Pool[hir.Node]) error {
	parsed, err := parse.Parse(ctx, u.front, u.file)
	if err != nil {
		return err
	}
	u.metrics = parsed.Metrics

	handle := pool.Get()
	u.tree = hirbuild.Build(parsed.Tree.RootNode(), u.file.Content(), u.front.Tokens, intern.New(), handle)
	handle.Release()
	return nil
}

func extOf(path string) string {
	dot := -1
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			dot = i
			break
		}
		if path[i] == '/' {
			break
		}
	}
	if dot < 0 {
		return ""
	}
	return path[dot:]
}

func unitName(file *source.File) string {
	path := file.LogicalPath
	start := 0
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			start = i + 1
			break
		}
	}
	name := path[start:]
	if ext := extOf(name); ext != "" {
		name = name[:len(name)-len(ext)]
	}
	return name
}
