package reconcile

import (
	"context"
	"sync"
	"time"
)

type fakeSource struct {
	records []SourceRecord
	err     error
	// hang blocks FetchEmployees until the context is done.
	hang  bool
	calls int
	mu    sync.Mutex
}

func (f *fakeSource) FetchEmployees(ctx context.Context) ([]SourceRecord, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.hang {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

type modifyCall struct {
	path string
	diff AttributeDiff
}

type relocateCall struct {
	path   string
	parent string
}

type fakeDirectory struct {
	entries   []DirectoryEntry
	searchErr error

	// managers maps employee ids to paths for ResolvePathByEmployeeID.
	managers   map[string]string
	resolveErr error

	modifyErr   map[string]error
	relocateErr map[string]error
	panicOn     string

	// hangSearch, hangModify and hangRelocate block the call until the context is done.
	hangSearch   bool
	hangModify   string
	hangRelocate string
	// modifyDelay keeps a modify in flight long enough to observe concurrency.
	modifyDelay time.Duration

	mu          sync.Mutex
	searches    int
	resolves    int
	modifies    []modifyCall
	relocates   []relocateCall
	order       []string
	inflight    int
	maxInflight int
}

func (f *fakeDirectory) SearchUsers(ctx context.Context, basePath, filter string, attributes []string) ([]DirectoryEntry, error) {
	f.mu.Lock()
	f.searches++
	f.mu.Unlock()
	if f.hangSearch {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	out := make([]DirectoryEntry, len(f.entries))
	copy(out, f.entries)
	return out, nil
}

func (f *fakeDirectory) ApplyAttributeChanges(ctx context.Context, entryPath string, diff AttributeDiff) error {
	if f.panicOn != "" && entryPath == f.panicOn {
		panic("boom")
	}
	if f.hangModify != "" && entryPath == f.hangModify {
		<-ctx.Done()
		return ctx.Err()
	}
	if f.modifyDelay > 0 {
		f.mu.Lock()
		f.inflight++
		if f.inflight > f.maxInflight {
			f.maxInflight = f.inflight
		}
		f.mu.Unlock()

		time.Sleep(f.modifyDelay)

		f.mu.Lock()
		f.inflight--
		f.mu.Unlock()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.modifies = append(f.modifies, modifyCall{path: entryPath, diff: diff})
	f.order = append(f.order, "modify:"+entryPath)
	if err := f.modifyErr[entryPath]; err != nil {
		return err
	}
	f.applyLocked(entryPath, diff)
	return nil
}

func (f *fakeDirectory) RelocateEntry(ctx context.Context, entryPath, newParentPath string) error {
	if f.hangRelocate != "" && entryPath == f.hangRelocate {
		<-ctx.Done()
		return ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.relocates = append(f.relocates, relocateCall{path: entryPath, parent: newParentPath})
	f.order = append(f.order, "relocate:"+entryPath)
	return f.relocateErr[entryPath]
}

func (f *fakeDirectory) ResolvePathByEmployeeID(ctx context.Context, employeeID string) (string, bool, error) {
	f.mu.Lock()
	f.resolves++
	f.mu.Unlock()
	if f.resolveErr != nil {
		return "", false, f.resolveErr
	}
	path, ok := f.managers[employeeID]
	return path, ok, nil
}

// applyLocked mirrors a successful modify so that a second pass sees the new state.
func (f *fakeDirectory) applyLocked(path string, diff AttributeDiff) {
	for i := range f.entries {
		e := &f.entries[i]
		if e.UniquePath != path {
			continue
		}
		for attr, v := range diff {
			switch attr {
			case AttrDepartment:
				e.Department = v
			case AttrTitle:
				e.Title = v
			case AttrManager:
				e.ManagerReference = v
			case AttrMobile:
				e.Mobile = v
			case AttrEmployeeID:
				e.EmployeeID = v
			case AttrGender:
				e.Gender = v
			}
		}
	}
}

func (f *fakeDirectory) writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.modifies) + len(f.relocates)
}
