// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package analyzer

import (
	"os"
	"strings"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/go-index-rewriter/sql"
)

const debugAnalyzerKey = "DEBUG_ANALYZER"

// Builder provides an easy way to generate Analyzer with custom options.
type Builder struct {
	debug   bool
	verbose bool
	level   logrus.Level
	logger  *logrus.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{level: logrus.InfoLevel}
}

// WithDebug activates debug on the Analyzer.
func (ab *Builder) WithDebug() *Builder {
	ab.debug = true

	return ab
}

// WithVerbose makes the Analyzer log the plan before and after rewriting it.
// It implies debug.
func (ab *Builder) WithVerbose() *Builder {
	ab.debug = true
	ab.verbose = true

	return ab
}

// WithLogger sets the logger debug messages are written to. The standard
// logrus logger is used by default.
func (ab *Builder) WithLogger(l *logrus.Logger) *Builder {
	ab.logger = l

	return ab
}

// WithConfig applies the given configuration on top of the options already
// set on the builder.
func (ab *Builder) WithConfig(cfg *Config) *Builder {
	if cfg == nil {
		return ab
	}
	if cfg.Debug {
		ab.WithDebug()
	}
	if cfg.Verbose {
		ab.WithVerbose()
	}
	if cfg.LogLevel != "" {
		// ReadConfig has already rejected unknown levels.
		if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			ab.level = lvl
		}
	}

	return ab
}

// Build creates a new Analyzer using all previous data set to the Builder.
func (ab *Builder) Build() *Analyzer {
	_, debug := os.LookupEnv(debugAnalyzerKey)
	logger := ab.logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Analyzer{
		Debug:    debug || ab.debug,
		Verbose:  ab.verbose,
		debugCtx: make([]string, 0),
		logger:   logger,
		level:    ab.level,
	}
}

// Analyzer rewrites plans so they can be run against secondary index tables.
type Analyzer struct {
	// Whether to log various debugging messages
	Debug bool
	// Whether to output the query plan before and after it is rewritten
	Verbose  bool
	debugCtx []string
	logger   *logrus.Logger
	level    logrus.Level
}

// NewDefault creates a default Analyzer instance.
func NewDefault() *Analyzer {
	return NewBuilder().Build()
}

// Log writes the given message and args through the analyzer's logger if the
// analyzer is in debug mode.
func (a *Analyzer) Log(msg string, args ...interface{}) {
	if a != nil && a.Debug {
		if len(a.debugCtx) > 0 {
			ctx := strings.Join(a.debugCtx, "/")
			a.logger.Logf(a.level, "%s: "+msg, append([]interface{}{ctx}, args...)...)
		} else {
			a.logger.Logf(a.level, msg, args...)
		}
	}
}

// LogNode logs the node given if Verbose logging is enabled.
func (a *Analyzer) LogNode(n sql.Node) {
	if a != nil && n != nil && a.Verbose {
		if len(a.debugCtx) > 0 {
			ctx := strings.Join(a.debugCtx, "/")
			a.logger.Logf(a.level, "%s:\n%s", ctx, n.String())
		} else {
			a.logger.Logf(a.level, "\n%s", n.String())
		}
	}
}

// PushDebugContext pushes the given context string onto the context stack, to use when logging debug messages.
// It modifies the analyzer and must not be called while other goroutines use it.
func (a *Analyzer) PushDebugContext(msg string) {
	if a != nil {
		a.debugCtx = append(a.debugCtx, msg)
	}
}

// PopDebugContext pops a context message off the context stack.
func (a *Analyzer) PopDebugContext() {
	if a != nil && len(a.debugCtx) > 0 {
		a.debugCtx = a.debugCtx[:len(a.debugCtx)-1]
	}
}

// withDebugContext returns a copy of the analyzer logging with msg pushed
// onto its context stack. The receiver is left untouched, so the copy can be
// used by a single translation while other goroutines share the receiver.
func (a *Analyzer) withDebugContext(msg string) *Analyzer {
	if a == nil {
		return nil
	}
	na := *a
	n := len(a.debugCtx)
	na.debugCtx = append(a.debugCtx[:n:n], msg)
	return &na
}

// Translate rewrites the given plan so every column it references addresses
// the index table of the columns known to the resolver. The plan is returned
// unchanged, as the same object, if it references no column.
func (a *Analyzer) Translate(ctx *sql.Context, n sql.Node, resolver sql.ColumnResolver) (sql.Node, error) {
	span, ctx := ctx.Span("analyze", opentracing.Tags{
		"plan": n.String(),
	})
	defer span.Finish()

	a = a.withDebugContext("translate_to_index")

	a.Log("starting translation of node of type: %T", n)
	a.LogNode(n)

	res, same, err := translateToIndex(ctx, a, n, resolver)
	if err != nil {
		span.SetTag("error", err.Error())
		return nil, err
	}

	span.SetTag("changed", !bool(same))
	if !same {
		a.LogNode(res)
	}
	return res, nil
}

// TranslateStatement binds the table the plan reads from in the given
// database and translates the plan against it.
func (a *Analyzer) TranslateStatement(ctx *sql.Context, db sql.Database, n sql.Node) (sql.Node, error) {
	resolver, err := resolveTable(ctx, db, n)
	if err != nil {
		return nil, err
	}
	a.Log("bound statement to table %s", resolver)
	return a.Translate(ctx, n, resolver)
}
