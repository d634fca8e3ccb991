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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-index-rewriter/memory"
	"github.com/dolthub/go-index-rewriter/sql"
	"github.com/dolthub/go-index-rewriter/sql/analyzer"
	"github.com/dolthub/go-index-rewriter/sql/expression"
	"github.com/dolthub/go-index-rewriter/sql/plan"
	"github.com/dolthub/go-index-rewriter/sql/types"
)

func newTestDatabase(t *testing.T) *memory.Database {
	db := memory.NewDatabase("mydb")
	_, err := db.CreateTable(sql.NewEmptyContext(), "mytable", sql.Schema{
		{Name: "id", Type: types.Int64, PrimaryKey: true},
		{Name: "name", Type: types.Char(10), Nullable: true, Family: "0"},
	})
	require.NoError(t, err)
	return db
}

func TestEngineTranslate(t *testing.T) {
	require := require.New(t)

	tracer := mocktracer.New()
	ctx := sql.NewContext(context.Background(), sql.WithTracer(tracer), sql.WithQuery("SELECT * FROM mytable"))
	e := NewDefault(newTestDatabase(t))

	table := plan.NewUnresolvedTable("mytable", "mydb")
	result, err := e.Translate(ctx, plan.NewProject([]sql.Expression{expression.NewStar()}, table))
	require.NoError(err)
	require.Equal(plan.NewProject([]sql.Expression{expression.NewIndexStar()}, table), result)

	spans := tracer.FinishedSpans()
	require.NotEmpty(spans)
	query := spans[len(spans)-1]
	require.Equal("query", query.OperationName)
	require.Equal("SELECT * FROM mytable", query.Tag("query"))

	var names []string
	for _, s := range spans {
		names = append(names, s.OperationName)
	}
	require.Equal([]string{"resolve_tables", "translate_to_index", "analyze", "query"}, names)
}

func TestEngineTranslateConcurrently(t *testing.T) {
	logger, hook := test.NewNullLogger()
	e := &Engine{
		Database: newTestDatabase(t),
		Analyzer: analyzer.NewBuilder().WithVerbose().WithLogger(logger).Build(),
	}

	table := plan.NewUnresolvedTable("mytable", "")
	expected := plan.NewProject([]sql.Expression{
		expression.NewUnresolvedColumnWithLabel("0:name", "name"),
	}, table)

	const workers, iterations = 8, 50
	errs := make(chan error, workers*iterations)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := sql.NewEmptyContext()
			for j := 0; j < iterations; j++ {
				result, err := e.Translate(ctx, plan.NewProject([]sql.Expression{
					expression.NewUnresolvedColumn("name"),
				}, table))
				if err != nil {
					errs <- err
					continue
				}
				if !assert.ObjectsAreEqual(expected, result) {
					errs <- fmt.Errorf("unexpected result: %s", result)
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	for _, entry := range hook.AllEntries() {
		require.NotContains(t, entry.Message, "translate_to_index/", entry.Message)
	}
}

func TestEngineTranslateError(t *testing.T) {
	require := require.New(t)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	ctx := sql.NewContext(context.Background(), sql.WithLogger(logrus.NewEntry(logger)))
	e := NewDefault(newTestDatabase(t))

	_, err := e.Translate(ctx, plan.NewProject(
		[]sql.Expression{expression.NewUnresolvedQualifiedColumn("1", "name")},
		plan.NewUnresolvedTable("mytable", ""),
	))
	require.True(sql.ErrTableNotFound.Is(err))
	require.Equal(err, hook.LastEntry().Data[logrus.ErrorKey])
	require.Equal(ctx.QueryID().String(), hook.LastEntry().Data[sql.QueryIDLogField])
}

func TestNewWithConfig(t *testing.T) {
	require := require.New(t)
	db := newTestDatabase(t)

	e, err := New(db, nil)
	require.NoError(err)
	require.False(e.Analyzer.Verbose)

	path := filepath.Join(t.TempDir(), "analyzer.yml")
	require.NoError(os.WriteFile(path, []byte("debug: true\nverbose: true\n"), 0600))

	e, err = New(db, &Config{AnalyzerConfigFile: path})
	require.NoError(err)
	require.True(e.Analyzer.Debug)
	require.True(e.Analyzer.Verbose)
	require.Same(db, e.Database)

	require.NoError(os.WriteFile(path, []byte("verbose: maybe\n"), 0600))
	_, err = New(db, &Config{AnalyzerConfigFile: path})
	require.True(analyzer.ErrInvalidConfig.Is(err))
}
