package cli

import (
	"context"
	"testing"
)

type fakeDriver struct {
	calls []string
}

func (d *fakeDriver) Name() string { return "fake" }

func (d *fakeDriver) step(name string) error {
	d.calls = append(d.calls, name)
	return nil
}

func (d *fakeDriver) Install(ctx context.Context) error   { return d.step(StepInstall) }
func (d *fakeDriver) Configure(ctx context.Context) error { return d.step(StepConfigure) }
func (d *fakeDriver) Init(ctx context.Context) error      { return d.step(StepInit) }
func (d *fakeDriver) Start(ctx context.Context) error     { return d.step(StepStart) }
func (d *fakeDriver) Stop(ctx context.Context) error      { return d.step(StepStop) }
func (d *fakeDriver) Cleanup(ctx context.Context) error   { return d.step(StepCleanup) }

func TestStepFunc(t *testing.T) {
	drv := &fakeDriver{}
	ctx := context.Background()

	for _, step := range []string{StepInstall, StepConfigure, StepInit, StepStart, StepStop, StepCleanup} {
		fn, err := stepFunc(drv, step)
		if err != nil {
			t.Fatalf("stepFunc(%s) error = %v", step, err)
		}
		if err := fn(ctx); err != nil {
			t.Fatalf("step %s error = %v", step, err)
		}
	}

	want := []string{StepInstall, StepConfigure, StepInit, StepStart, StepStop, StepCleanup}
	if len(drv.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", drv.calls, want)
	}
	for i := range want {
		if drv.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", drv.calls, want)
		}
	}
}

func TestStepFunc_Unknown(t *testing.T) {
	if _, err := stepFunc(&fakeDriver{}, "reprovision"); err == nil {
		t.Error("stepFunc should reject unknown steps")
	}
}

func TestApplySequence(t *testing.T) {
	want := []string{StepInstall, StepConfigure, StepInit, StepStart}
	if len(ApplySequence) != len(want) {
		t.Fatalf("ApplySequence = %v, want %v", ApplySequence, want)
	}
	for i := range want {
		if ApplySequence[i] != want[i] {
			t.Fatalf("ApplySequence = %v, want %v", ApplySequence, want)
		}
	}
}
