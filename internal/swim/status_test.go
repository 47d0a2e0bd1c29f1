package swim

import (
	"testing"
)

func TestStatus_Supersedes(t *testing.T) {
	tests := []struct {
		name string
		s    Status
		old  Status
		want bool
	}{
		{"higher incarnation alive wins", AliveStatus(2), AliveStatus(1), true},
		{"lower incarnation alive loses", AliveStatus(1), AliveStatus(2), false},
		{"equal incarnation alive does not supersede itself", AliveStatus(1), AliveStatus(1), false},
		{"suspect beats alive at equal incarnation", SuspectStatus(1, 9), AliveStatus(1), true},
		{"alive does not beat suspect at equal incarnation", AliveStatus(1), SuspectStatus(1, 9), false},
		{"alive refutes suspect with higher incarnation", AliveStatus(2), SuspectStatus(1, 9), true},
		{"unreachable beats suspect at equal incarnation", UnreachableStatus(1), SuspectStatus(1, 9), true},
		{"suspect does not beat unreachable at equal incarnation", SuspectStatus(1, 9), UnreachableStatus(1), false},
		{"dead beats everything", DeadStatus(), AliveStatus(100), true},
		{"dead beats unreachable", DeadStatus(), UnreachableStatus(100), true},
		{"nothing beats dead", AliveStatus(100), DeadStatus(), false},
		{"dead does not supersede dead", DeadStatus(), DeadStatus(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Supersedes(tt.old); got != tt.want {
				t.Errorf("(%v).Supersedes(%v) = %v, want %v", tt.s, tt.old, got, tt.want)
			}
		})
	}
}

func TestStatus_IsReachable(t *testing.T) {
	if !AliveStatus(0).IsReachable() {
		t.Error("alive should be reachable")
	}
	if !SuspectStatus(0, 1).IsReachable() {
		t.Error("suspect should still be reachable")
	}
	if UnreachableStatus(0).IsReachable() {
		t.Error("unreachable should not be reachable")
	}
	if DeadStatus().IsReachable() {
		t.Error("dead should not be reachable")
	}
}

func TestStatusChange_IsReachabilityChange(t *testing.T) {
	node := Node{Addr: "127.0.0.1:7946", UID: 1}
	alive := AliveStatus(1)
	suspect := SuspectStatus(1, 2)
	unreachable := UnreachableStatus(1)
	dead := DeadStatus()

	tests := []struct {
		name     string
		previous *Status
		current  Status
		want     bool
	}{
		{"new member", nil, alive, true},
		{"alive to suspect stays reachable", &alive, suspect, false},
		{"suspect to unreachable crosses", &suspect, unreachable, true},
		{"suspect to dead crosses", &suspect, dead, true},
		{"unreachable to dead stays unreachable", &unreachable, dead, false},
		{"unreachable back to alive crosses", &unreachable, alive, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := StatusChange{Previous: tt.previous, Member: Member{Node: node, Status: tt.current}}
			if got := c.IsReachabilityChange(); got != tt.want {
				t.Errorf("IsReachabilityChange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	if got := AliveStatus(3).String(); got != "ALIVE(3)" {
		t.Errorf("Expected ALIVE(3), got %s", got)
	}
	if got := DeadStatus().String(); got != "DEAD" {
		t.Errorf("Expected DEAD, got %s", got)
	}
	if got := SuspectStatus(2, 7, 3).String(); got != "SUSPECT(2, by [3 7])" {
		t.Errorf("Expected SUSPECT(2, by [3 7]), got %s", got)
	}
}
