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

package rewriter

import (
	opentracing "github.com/opentracing/opentracing-go"

	"github.com/dolthub/go-index-rewriter/sql"
	"github.com/dolthub/go-index-rewriter/sql/analyzer"
)

// Config for the Engine.
type Config struct {
	// AnalyzerConfigFile is the path of a YAML file with the analyzer
	// configuration. It's optional.
	AnalyzerConfigFile string
}

// Engine translates statements over the tables of a database into
// statements over their secondary index tables.
type Engine struct {
	Database sql.Database
	Analyzer *analyzer.Analyzer
}

// New creates a new Engine with custom configuration. To create an Engine with
// the default settings use `NewDefault`.
func New(db sql.Database, cfg *Config) (*Engine, error) {
	b := analyzer.NewBuilder()
	if cfg != nil && cfg.AnalyzerConfigFile != "" {
		acfg, err := analyzer.ReadConfigFile(cfg.AnalyzerConfigFile)
		if err != nil {
			return nil, err
		}
		b = b.WithConfig(acfg)
	}

	return &Engine{Database: db, Analyzer: b.Build()}, nil
}

// NewDefault creates a new default Engine.
func NewDefault(db sql.Database) *Engine {
	return &Engine{Database: db, Analyzer: analyzer.NewDefault()}
}

// Translate rewrites the statement so it reads from the index table of the
// table it reads from.
func (e *Engine) Translate(ctx *sql.Context, n sql.Node) (sql.Node, error) {
	span, ctx := ctx.Span("query", opentracing.Tag{Key: "query", Value: ctx.Query()})
	defer span.Finish()

	result, err := e.Analyzer.TranslateStatement(ctx, e.Database, n)
	if err != nil {
		ctx.GetLogger().WithError(err).Debug("unable to translate statement to index")
		return nil, err
	}

	return result, nil
}
