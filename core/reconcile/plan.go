package reconcile

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"hris-sync/core/directory"

	"go.uber.org/zap"
)

// pass holds the state shared by the workers of one Run.
type pass struct {
	spec     *Spec
	opts     Options
	log      *zap.Logger
	differ   Differ
	resolver *ManagerResolver
}

// process fans the pairs out to a bounded worker pool.
// Each record is isolated: errors and panics become failures and the others continue.
func (p *pass) process(ctx context.Context, pairs []MatchedPair) ([]SyncResult, []SyncFailure) {
	if len(pairs) == 0 {
		return nil, nil
	}

	workers := p.spec.Config.workers()
	if workers > len(pairs) {
		workers = len(pairs)
	}

	pairsCh := make(chan MatchedPair, len(pairs))
	for _, pair := range pairs {
		pairsCh <- pair
	}
	close(pairsCh)

	var (
		mu       sync.Mutex
		results  []SyncResult
		failures []SyncFailure
		wg       sync.WaitGroup
	)
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for pair := range pairsCh {
				result, failure := p.safeReconcile(ctx, pair)

				mu.Lock()
				if failure != nil {
					failures = append(failures, *failure)
				} else if result != nil {
					results = append(results, *result)
				}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return results, failures
}

func (p *pass) safeReconcile(ctx context.Context, pair MatchedPair) (result *SyncResult, failure *SyncFailure) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			failure = p.fail(pair, StagePanic, fmt.Errorf("panic: %v", r))
		}
	}()
	return p.reconcile(ctx, pair)
}

// reconcile plans the diff for one pair and applies it unless the pass is a test run.
// A nil result with a nil failure means the entry is already in sync.
func (p *pass) reconcile(ctx context.Context, pair MatchedPair) (*SyncResult, *SyncFailure) {
	var managerPath string
	if sup := pair.Source.SupervisorEmployeeID; ValidEmployeeID(sup) {
		path, found, err := p.resolver.Resolve(ctx, sup)
		if err != nil {
			return nil, p.fail(pair, StageResolveManager, err)
		}
		if found {
			managerPath = path
		} else {
			p.log.Debug("supervisor not found in directory",
				zap.String("employee_id", pair.Source.EmployeeID),
				zap.String("supervisor", sup))
		}
	}

	diff, current := p.differ.Diff(pair, managerPath)
	if len(diff) == 0 {
		return nil, nil
	}

	result := &SyncResult{
		EmployeeID:    pair.Source.EmployeeID,
		FullName:      pair.Source.FullName,
		AccountName:   pair.Entry.AccountName,
		EntryPath:     pair.Entry.UniquePath,
		Current:       current,
		Diff:          diff,
		Action:        p.action(pair),
		Match:         pair.Kind,
		FuzzyDistance: pair.Distance,
	}
	if diff.Has(AttrDepartment) {
		container := p.spec.container(diff[AttrDepartment])
		// an entry already filed under the department only needs its attribute fixed
		if _, parent := directory.SplitRDN(pair.Entry.UniquePath); !strings.EqualFold(parent, container) {
			result.Relocated = container
		}
	}

	if p.opts.TestOnly {
		return result, nil
	}

	timeout := p.spec.Config.CallTimeout()

	callCtx, cancel := withTimeout(ctx, timeout)
	err := p.spec.Directory.ApplyAttributeChanges(callCtx, pair.Entry.UniquePath, diff)
	cancel()
	if err != nil {
		return nil, p.fail(pair, StageModify, err)
	}

	if result.Relocated != "" {
		callCtx, cancel := withTimeout(ctx, timeout)
		err := p.spec.Directory.RelocateEntry(callCtx, pair.Entry.UniquePath, result.Relocated)
		cancel()
		if err != nil {
			return nil, p.fail(pair, StageRelocate, err)
		}

		rdn, _ := directory.SplitRDN(pair.Entry.UniquePath)
		p.resolver.Moved(pair.Source.EmployeeID, pair.Entry.UniquePath, rdn+","+result.Relocated)
	}

	p.log.Info("directory entry updated",
		zap.String("employee_id", result.EmployeeID),
		zap.String("entry", result.EntryPath),
		zap.String("action", string(result.Action)),
		zap.Any("diff", diff))

	return result, nil
}

func (p *pass) action(pair MatchedPair) ActionType {
	switch {
	case p.opts.TestOnly:
		return ActionTest
	case pair.Kind == MatchFuzzyName:
		return ActionIDReassigned
	case p.opts.Selected:
		return ActionAttributeUpdate
	default:
		return ActionUpdated
	}
}

func (p *pass) fail(pair MatchedPair, stage string, err error) *SyncFailure {
	fields := []zap.Field{
		zap.String("employee_id", pair.Source.EmployeeID),
		zap.String("stage", stage),
		zap.Error(err),
	}
	if pair.Entry != nil {
		fields = append(fields, zap.String("entry", pair.Entry.UniquePath))
	}
	p.log.Error("record reconciliation failed", fields...)

	return &SyncFailure{
		EmployeeID: pair.Source.EmployeeID,
		Stage:      stage,
		Error:      err.Error(),
	}
}
