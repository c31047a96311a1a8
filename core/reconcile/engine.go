package reconcile

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Spec wires the collaborators of a reconciliation pass.
type Spec struct {
	Source    Source
	Directory Directory

	// BasePath is the search base and the parent of department containers.
	BasePath string

	// Filter selects person entries under BasePath.
	Filter string

	// Attributes is the directory attribute list requested by the search.
	Attributes []string

	// Container builds the parent path for a department. Defaults to "OU=<department>,<base>".
	Container func(department, basePath string) string

	// Scorer overrides the fuzzy name scorer. Defaults to LevenshteinScorer.
	Scorer Scorer

	Config Config
	Logger *zap.Logger
}

func (s *Spec) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *Spec) container(department string) string {
	if s.Container != nil {
		return s.Container(department, s.BasePath)
	}
	return "OU=" + department + "," + s.BasePath
}

// Run performs one reconciliation pass.
// Extraction failures abort the pass before any write and are wrapped in ErrExtract.
// Per-record failures are collected in the report and never abort the pass.
func Run(ctx context.Context, spec *Spec, opts Options) (*SyncReport, error) {
	report := &SyncReport{
		RunID:     uuid.NewString(),
		Test:      opts.TestOnly,
		Results:   []SyncResult{},
		StartedAt: time.Now().UTC(),
	}
	log := spec.logger().With(zap.String("run_id", report.RunID), zap.Bool("test", opts.TestOnly))

	records, entries, err := extract(ctx, spec)
	if err != nil {
		log.Error("extraction failed, aborting pass", zap.Error(err))
		return nil, err
	}
	report.Summary.SourceRecords = len(records)
	report.Summary.DirectoryEntries = len(entries)

	matcher := NewMatcher(spec.Config.FuzzyMaxDistance)
	if spec.Scorer != nil {
		matcher.Scorer = spec.Scorer
	}
	pairs := scope(matcher.Match(records, entries), opts.EmployeeIDs)
	report.Summary.InScope = len(pairs)

	work := make([]MatchedPair, 0, len(pairs))
	for _, pair := range pairs {
		switch pair.Kind {
		case MatchExactKey:
			report.Summary.ExactMatches++
		case MatchFuzzyName:
			report.Summary.FuzzyMatches++
			log.Info("identity matched by name",
				zap.String("employee_id", pair.Source.EmployeeID),
				zap.String("entry", pair.Entry.UniquePath),
				zap.Int("distance", pair.Distance))
		default:
			report.Summary.Unmatched++
			if pair.Duplicate {
				log.Warn("employee id repeated in source, record skipped",
					zap.String("employee_id", pair.Source.EmployeeID),
					zap.String("full_name", pair.Source.FullName))
				continue
			}
			log.Warn("no directory entry for employee",
				zap.String("employee_id", pair.Source.EmployeeID),
				zap.String("full_name", pair.Source.FullName))
			continue
		}
		work = append(work, pair)
	}

	p := &pass{
		spec:     spec,
		opts:     opts,
		log:      log,
		differ:   Differ{CaseInsensitive: spec.Config.CaseInsensitive},
		resolver: NewManagerResolver(spec.Directory, spec.Config.CallTimeout()),
	}
	results, failures := p.process(ctx, work)

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].EmployeeID != results[j].EmployeeID {
			return results[i].EmployeeID < results[j].EmployeeID
		}
		return results[i].EntryPath < results[j].EntryPath
	})
	sort.SliceStable(failures, func(i, j int) bool {
		return failures[i].EmployeeID < failures[j].EmployeeID
	})

	report.Results = append(report.Results, results...)
	report.Failures = failures
	report.Summary.Changed = len(results)
	report.Summary.Failed = len(failures)
	report.FinishedAt = time.Now().UTC()

	log.Info("reconciliation pass finished",
		zap.Int("in_scope", report.Summary.InScope),
		zap.Int("changed", report.Summary.Changed),
		zap.Int("failed", report.Summary.Failed),
		zap.Int("unmatched", report.Summary.Unmatched),
		zap.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)))

	return report, nil
}

// extract loads both populations concurrently and joins before returning.
func extract(ctx context.Context, spec *Spec) ([]SourceRecord, []DirectoryEntry, error) {
	var (
		records   []SourceRecord
		entries   []DirectoryEntry
		sourceErr error
		dirErr    error
		wg        sync.WaitGroup
	)

	timeout := spec.Config.CallTimeout()
	wg.Add(2)

	go func() {
		defer wg.Done()
		callCtx, cancel := withTimeout(ctx, timeout)
		defer cancel()
		records, sourceErr = spec.Source.FetchEmployees(callCtx)
	}()

	go func() {
		defer wg.Done()
		callCtx, cancel := withTimeout(ctx, timeout)
		defer cancel()
		entries, dirErr = spec.Directory.SearchUsers(callCtx, spec.BasePath, spec.Filter, spec.Attributes)
	}()

	wg.Wait()

	if sourceErr != nil {
		return nil, nil, fmt.Errorf("%w: source: %w", ErrExtract, sourceErr)
	}
	if dirErr != nil {
		return nil, nil, fmt.Errorf("%w: directory: %w", ErrExtract, dirErr)
	}

	return records, entries, nil
}

// scope keeps the pairs whose source id is listed. A nil list keeps everything.
func scope(pairs []MatchedPair, ids []string) []MatchedPair {
	if ids == nil {
		return pairs
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	scoped := make([]MatchedPair, 0, len(ids))
	for _, pair := range pairs {
		if _, ok := wanted[pair.Source.EmployeeID]; ok {
			scoped = append(scoped, pair)
		}
	}
	return scoped
}
