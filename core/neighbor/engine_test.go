// core/neighbor/engine_test.go
package neighbor

import (
	"context"
	"errors"
	"math"
	"testing"

	"tpsrank-core/phylo"
)

// Six terminals, two characterized. Expected nearest neighbors were worked
// out by hand on the drawn tree.
const sixLeafTree = "((C1:1.0,U1:2.0):1.0,(U2:1.5,(C2:0.5,U3:0.5):1.0):2.0,U4:4.0);"

func newEngine(t *testing.T, nwk string, chars []string, size int) *Engine {
	t.Helper()
	tr, err := phylo.Parse([]byte(nwk))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	set, err := NewCharacterizedSet(chars)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	e, err := New(tr, set, size)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return e
}

func TestEngineHandChecked(t *testing.T) {
	e := newEngine(t, sixLeafTree, []string{"C1", "C2"}, 2)
	if e.NumUncharacterized() != 4 || e.NumPartitions() != 2 {
		t.Fatalf("universe = %d uncs, %d partitions", e.NumUncharacterized(), e.NumPartitions())
	}
	want := []DistanceRecord{
		{ID: "U1", ClosestID: "C1", Distance: 3.0},
		{ID: "U2", ClosestID: "C2", Distance: 3.0},
		{ID: "U3", ClosestID: "C2", Distance: 1.0},
		{ID: "U4", ClosestID: "C1", Distance: 6.0},
	}
	var got []DistanceRecord
	for k := 0; k < e.NumPartitions(); k++ {
		recs, err := e.ComputePartition(context.Background(), k)
		if err != nil {
			t.Fatalf("partition %d: %v", k, err)
		}
		got = append(got, recs...)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].ClosestID != want[i].ClosestID ||
			math.Abs(got[i].Distance-want[i].Distance) > 1e-12 {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// Every record must agree with an independent recomputation over all
// characterized terminals (ancestor-set path walk, not the LCA fast path).
func TestEngineBruteForce(t *testing.T) {
	const nwk = "(((U_a:0.7,C_x:0.3):0.2,(U_b:0.4,U_c:0.9):1.1):0.5,((C_y:0.6,U_d:0.8):0.3,(U_e:1.2,C_z:0.1):0.4):0.9);"
	e := newEngine(t, nwk, []string{"C_x", "C_y", "C_z"}, 0)

	tr, err := phylo.Parse([]byte(nwk))
	if err != nil {
		t.Fatal(err)
	}
	pathDist := func(a, b *phylo.Node) float64 {
		up := map[*phylo.Node]float64{}
		d := 0.0
		for n := a; n != nil; n = n.Parent {
			up[n] = d
			d += n.Length
		}
		d = 0.0
		for n := b; n != nil; n = n.Parent {
			if da, ok := up[n]; ok {
				return da + d
			}
			d += n.Length
		}
		t.Fatalf("no common ancestor for %s/%s", a.Name, b.Name)
		return 0
	}
	leaf := func(name string) *phylo.Node {
		ns := tr.Lookup(name)
		if len(ns) != 1 {
			t.Fatalf("lookup %s", name)
		}
		return ns[0]
	}

	recs, err := e.ComputePartition(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 5 {
		t.Fatalf("got %d records, want 5", len(recs))
	}
	chars := []string{"C_x", "C_y", "C_z"}
	for _, r := range recs {
		bestID, bestD := "", math.Inf(1)
		for _, c := range chars {
			if d := pathDist(leaf(r.ID), leaf(c)); d < bestD {
				bestID, bestD = c, d
			}
		}
		if r.ClosestID != bestID || math.Abs(r.Distance-bestD) > 1e-12 {
			t.Errorf("%s: engine (%s, %v), brute force (%s, %v)", r.ID, r.ClosestID, r.Distance, bestID, bestD)
		}
	}
}

// Equidistant characterized nodes: the first in set order wins.
func TestEngineTieBreak(t *testing.T) {
	const nwk = "((C1:1.0,C2:1.0):1.0,U:1.0);"
	e := newEngine(t, nwk, []string{"C2", "C1"}, 0)
	recs, err := e.ComputePartition(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].ClosestID != "C2" {
		t.Fatalf("records = %+v, want closest C2", recs)
	}

	e = newEngine(t, nwk, []string{"C1", "C2"}, 0)
	recs, err = e.ComputePartition(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].ClosestID != "C1" {
		t.Fatalf("records = %+v, want closest C1", recs)
	}
}

// Resolution failures abort engine construction.
func TestEngineResolutionFatal(t *testing.T) {
	tr, err := phylo.Parse([]byte("((C1:1,U1:1):1,(X:1,X:2):1);"))
	if err != nil {
		t.Fatal(err)
	}

	set, _ := NewCharacterizedSet([]string{"C1", "MISSING"})
	if _, err := New(tr, set, 0); !errors.Is(err, ErrUnknownID) {
		t.Fatalf("unknown id: err = %v", err)
	}

	set, _ = NewCharacterizedSet([]string{"X"})
	if _, err := New(tr, set, 0); !errors.Is(err, ErrAmbiguousID) {
		t.Fatalf("ambiguous id: err = %v", err)
	}

	// Duplicate names among the uncharacterized remainder are also fatal.
	set, _ = NewCharacterizedSet([]string{"C1"})
	if _, err := New(tr, set, 0); err == nil {
		t.Fatal("expected duplicate terminal-name error")
	}

	set, _ = NewCharacterizedSet(nil)
	if _, err := New(tr, set, 0); err == nil {
		t.Fatal("expected empty-set error")
	}
}

// Out-of-range partitions are empty work, not errors.
func TestEngineEmptyPartition(t *testing.T) {
	e := newEngine(t, sixLeafTree, []string{"C1", "C2"}, 2)
	recs, err := e.ComputePartition(context.Background(), 99)
	if err != nil {
		t.Fatalf("partition 99: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("records = %+v, want none", recs)
	}
}

// All terminals characterized: zero partitions, ComputeAll yields nothing.
func TestEngineNoUncharacterized(t *testing.T) {
	e := newEngine(t, "(C1:1,C2:2);", []string{"C1", "C2"}, 0)
	if e.NumPartitions() != 0 {
		t.Fatalf("partitions = %d, want 0", e.NumPartitions())
	}
	all, err := e.ComputeAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Fatalf("ComputeAll = %v, want empty", all)
	}
}

func TestEngineCancellation(t *testing.T) {
	e := newEngine(t, sixLeafTree, []string{"C1", "C2"}, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.ComputePartition(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
