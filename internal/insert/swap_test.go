package insert

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"go.i3wm.org/i3/v4"
)

// sequentialNames replaces the uuid-backed disposable name source so the
// expected batches are deterministic.
func sequentialNames() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("scratch-%d", n)
	}
}

func workspaceNode(id i3.NodeID, name string, containers ...*i3.Node) *i3.Node {
	return &i3.Node{ID: id, Type: i3.WorkspaceNode, Name: name, Nodes: containers}
}

func outputTree(workspaces ...*i3.Node) *i3.Node {
	return &i3.Node{
		ID:   1,
		Type: i3.Root,
		Nodes: []*i3.Node{
			{ID: 2, Type: i3.OutputNode, Name: "eDP-1", Nodes: workspaces},
		},
	}
}

func TestPlanSwap_BeforeFocusedPivot(t *testing.T) {
	ws2 := workspaceNode(20, "2", &i3.Node{ID: 55, Type: i3.Con, Focused: true})
	ws2.Focus = []i3.NodeID{55}
	root := outputTree(
		workspaceNode(10, "1", &i3.Node{ID: 77, Type: i3.Con}),
		ws2,
		workspaceNode(30, "3", &i3.Node{ID: 66, Type: i3.Con}),
	)

	batch, err := planSwap(root, NewDestination("2", true), "new", 77, sequentialNames())
	if err != nil {
		t.Fatalf("planSwap() error = %v", err)
	}

	want := []string{
		`[con_id=77] move container to workspace "new"`,
		`[con_id=55] move container to workspace "scratch-1"`,
		`workspace "scratch-1"`,
		`rename workspace "scratch-1" to "2"`,
		`[con_id=66] move container to workspace "scratch-2"`,
		`rename workspace "scratch-2" to "3"`,
	}
	if !reflect.DeepEqual(batch, want) {
		t.Errorf("batch = %v, want %v", batch, want)
	}
}

func TestPlanSwap_AfterPivot(t *testing.T) {
	root := outputTree(
		workspaceNode(10, "1"),
		workspaceNode(20, "2", &i3.Node{ID: 55, Type: i3.Con}),
		workspaceNode(30, "3", &i3.Node{ID: 66, Type: i3.Con}),
	)

	batch, err := planSwap(root, NewDestination("2", false), "new", NoContainer, sequentialNames())
	if err != nil {
		t.Fatalf("planSwap() error = %v", err)
	}

	want := []string{
		`workspace "new"`,
		`[con_id=66] move container to workspace "scratch-1"`,
		`rename workspace "scratch-1" to "3"`,
	}
	if !reflect.DeepEqual(batch, want) {
		t.Errorf("batch = %v, want %v", batch, want)
	}
}

func TestPlanSwap_EmptyWorkspaceLeftUntouched(t *testing.T) {
	root := outputTree(
		workspaceNode(10, "1"),
		workspaceNode(20, "2"),
	)

	batch, err := planSwap(root, NewDestination("1", false), "new", NoContainer, sequentialNames())
	if err != nil {
		t.Fatalf("planSwap() error = %v", err)
	}

	want := []string{`workspace "new"`}
	if !reflect.DeepEqual(batch, want) {
		t.Errorf("batch = %v, want %v", batch, want)
	}
}

func TestPlanSwap_MovesFloatingContainers(t *testing.T) {
	ws2 := workspaceNode(20, "2", &i3.Node{ID: 55, Type: i3.Con})
	ws2.FloatingNodes = []*i3.Node{{ID: 56, Type: i3.FloatingCon}}
	root := outputTree(workspaceNode(10, "1"), ws2)

	batch, err := planSwap(root, NewDestination("1", false), "new", NoContainer, sequentialNames())
	if err != nil {
		t.Fatalf("planSwap() error = %v", err)
	}

	want := []string{
		`workspace "new"`,
		`[con_id=55] move container to workspace "scratch-1"`,
		`[con_id=56] move container to workspace "scratch-1"`,
		`rename workspace "scratch-1" to "2"`,
	}
	if !reflect.DeepEqual(batch, want) {
		t.Errorf("batch = %v, want %v", batch, want)
	}
}

func TestPlanSwap_NoFocusSwitchWithoutContainer(t *testing.T) {
	ws2 := workspaceNode(20, "2", &i3.Node{ID: 55, Type: i3.Con, Focused: true})
	ws2.Focus = []i3.NodeID{55}
	root := outputTree(workspaceNode(10, "1"), ws2)

	batch, err := planSwap(root, NewDestination("1", false), "new", NoContainer, sequentialNames())
	if err != nil {
		t.Fatalf("planSwap() error = %v", err)
	}

	for _, cmd := range batch {
		if cmd == `workspace "scratch-1"` {
			t.Errorf("batch switches to the disposable workspace without a container move: %v", batch)
		}
	}
}

func TestPlanSwap_RelocatedContainerStaysPut(t *testing.T) {
	// The relocated container lives in a shifted, focused workspace: it
	// must not be evacuated, but focus still follows the disposable.
	ws2 := workspaceNode(20, "2",
		&i3.Node{ID: 55, Type: i3.Con, Focused: true},
		&i3.Node{ID: 56, Type: i3.Con},
	)
	ws2.Focus = []i3.NodeID{55}
	root := outputTree(workspaceNode(10, "1"), ws2)

	batch, err := planSwap(root, NewDestination("2", true), "new", 55, sequentialNames())
	if err != nil {
		t.Fatalf("planSwap() error = %v", err)
	}

	want := []string{
		`[con_id=55] move container to workspace "new"`,
		`[con_id=56] move container to workspace "scratch-1"`,
		`workspace "scratch-1"`,
		`rename workspace "scratch-1" to "2"`,
	}
	if !reflect.DeepEqual(batch, want) {
		t.Errorf("batch = %v, want %v", batch, want)
	}
}

func TestPlanSwap_UnnamedWorkspaceIsFatal(t *testing.T) {
	root := outputTree(
		workspaceNode(10, "1"),
		workspaceNode(20, "", &i3.Node{ID: 55, Type: i3.Con}),
	)

	_, err := planSwap(root, NewDestination("1", false), "new", NoContainer, sequentialNames())
	if !errors.Is(err, ErrUnnamedWorkspace) {
		t.Errorf("planSwap() error = %v, want ErrUnnamedWorkspace", err)
	}
}

func TestPlanSwap_NoPivotWorkspace(t *testing.T) {
	root := outputTree(workspaceNode(10, "1"))

	_, err := planSwap(root, NewDestination("missing", false), "new", NoContainer, sequentialNames())

	var noPivot *NoPivotError
	if !errors.As(err, &noPivot) {
		t.Fatalf("planSwap() error = %v, want NoPivotError", err)
	}
	if noPivot.Pivot != "missing" {
		t.Errorf("NoPivotError.Pivot = %q, want missing", noPivot.Pivot)
	}
}
