package reclaim

import "testing"

func TestPlanCounts(t *testing.T) {
	t.Parallel()

	plan := planOf(
		Resource{ID: "srv-1", Name: "a", Kind: KindInstance},
		Resource{ID: "srv-2", Name: "b", Kind: KindInstance},
		Resource{ID: "net-1", Name: "c", Kind: KindNetwork},
	)

	if got := plan.Count(KindInstance); got != 2 {
		t.Errorf("Count(instance) = %d, want 2", got)
	}
	if got := plan.Count(KindVolume); got != 0 {
		t.Errorf("Count(volume) = %d, want 0", got)
	}
	if got := plan.Total(); got != 3 {
		t.Errorf("Total() = %d, want 3", got)
	}
	if plan.Empty() {
		t.Error("plan with resources reported empty")
	}
}

func TestPlanPreservesDiscoveryOrder(t *testing.T) {
	t.Parallel()

	plan := planOf(
		Resource{ID: "srv-2", Name: "worker", Kind: KindInstance},
		Resource{ID: "srv-1", Name: "master", Kind: KindInstance},
	)

	rs := plan.Resources(KindInstance)
	if len(rs) != 2 || rs[0].ID != "srv-2" || rs[1].ID != "srv-1" {
		t.Errorf("Resources(instance) = %v, want srv-2 then srv-1", rs)
	}
}

func TestPlanEmpty(t *testing.T) {
	t.Parallel()

	plan := NewPlan(testSig)
	if !plan.Empty() {
		t.Error("fresh plan reported non-empty")
	}
	if got := plan.Resources(KindRouter); got != nil {
		t.Errorf("Resources on empty plan = %v, want nil", got)
	}
}
