package schedule

import (
	"reflect"
	"testing"

	"fairway/models"
)

func blk(id string, start, end int) models.ScheduleBlock {
	return models.ScheduleBlock{ID: id, OwnerID: "c1", Label: id, Start: start, End: end}
}

func byID(t *testing.T, blocks []models.ScheduleBlock, id string) models.ScheduleBlock {
	t.Helper()
	for _, b := range blocks {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("block %s missing from layout output", id)
	return models.ScheduleBlock{}
}

func TestLayout_TransitiveChainSharesGroup(t *testing.T) {
	// A-B overlap and B-C overlap but A-C do not: transitive grouping still
	// spends three columns on all three.
	out := Layout([]models.ScheduleBlock{
		blk("A", 600, 660), // 10:00-11:00
		blk("B", 630, 690), // 10:30-11:30
		blk("C", 675, 720), // 11:15-12:00
	})
	for _, id := range []string{"A", "B", "C"} {
		if got := byID(t, out, id).TotalColumns; got != 3 {
			t.Errorf("%s.TotalColumns = %d, want 3", id, got)
		}
	}
	if byID(t, out, "A").Column != 0 || byID(t, out, "B").Column != 1 || byID(t, out, "C").Column != 2 {
		t.Errorf("columns not assigned in start order: %+v", out)
	}
}

func TestLayout_TouchingBlocksStayIndependent(t *testing.T) {
	// Half-open intervals: 11:00 end touches 11:00 start without overlap.
	out := Layout([]models.ScheduleBlock{
		blk("A", 600, 660),
		blk("B", 660, 720),
	})
	for _, id := range []string{"A", "B"} {
		b := byID(t, out, id)
		if b.TotalColumns != 1 || b.Column != 0 {
			t.Errorf("%s should be alone in its group, got col %d of %d", id, b.Column, b.TotalColumns)
		}
	}
}

func TestLayout_BridgeBlockMergesGroups(t *testing.T) {
	// A and C are disjoint groups until B arrives overlapping both.
	out := Layout([]models.ScheduleBlock{
		blk("A", 600, 660),  // 10:00-11:00
		blk("C", 720, 780),  // 12:00-13:00
		blk("B", 645, 750),  // 10:45-12:30 bridges A and C
	})
	for _, id := range []string{"A", "B", "C"} {
		if got := byID(t, out, id).TotalColumns; got != 3 {
			t.Errorf("%s.TotalColumns = %d, want 3 after merge", id, got)
		}
	}
}

func TestLayout_NoPairInSameColumnOverlaps(t *testing.T) {
	out := Layout([]models.ScheduleBlock{
		blk("A", 600, 720),
		blk("B", 630, 660),
		blk("C", 640, 700),
		blk("D", 710, 770),
		blk("E", 800, 860),
		blk("F", 830, 890),
	})
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			if out[i].Column != out[j].Column {
				continue
			}
			if Overlaps(out[i].Start, out[i].End, out[j].Start, out[j].End) {
				t.Errorf("blocks %s and %s share column %d and overlap", out[i].ID, out[j].ID, out[i].Column)
			}
		}
	}
	// Every group member must agree on the group size.
	sizes := map[int]int{}
	for _, b := range out {
		sizes[b.TotalColumns]++
	}
	for total, n := range sizes {
		if n%total != 0 {
			t.Errorf("totalColumns %d claimed by %d blocks; groups are inconsistent", total, n)
		}
	}
}

func TestLayout_Idempotent(t *testing.T) {
	in := []models.ScheduleBlock{
		blk("A", 600, 700),
		blk("B", 650, 750),
		blk("C", 760, 820),
	}
	first := Layout(in)
	second := Layout(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("layout not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestLayout_EmptyInput(t *testing.T) {
	if out := Layout(nil); len(out) != 0 {
		t.Fatalf("expected empty output, got %+v", out)
	}
}

func TestLayout_DoesNotMutateInput(t *testing.T) {
	in := []models.ScheduleBlock{blk("A", 600, 700), blk("B", 650, 750)}
	Layout(in)
	for _, b := range in {
		if b.Column != 0 || b.TotalColumns != 0 {
			t.Fatalf("input slice mutated: %+v", in)
		}
	}
}
