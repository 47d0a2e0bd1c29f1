package swim

import (
	"testing"
)

func TestParseNode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Node
		wantErr bool
	}{
		{
			name:  "address only",
			input: "127.0.0.1:7946",
			want:  Node{Addr: "127.0.0.1:7946"},
		},
		{
			name:  "address with uid",
			input: "127.0.0.1:7946#42",
			want:  Node{Addr: "127.0.0.1:7946", UID: 42},
		},
		{
			name:  "surrounding whitespace",
			input: "  127.0.0.1:7946#42  ",
			want:  Node{Addr: "127.0.0.1:7946", UID: 42},
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "uid separator with empty address",
			input:   "#42",
			wantErr: true,
		},
		{
			name:    "non-numeric uid",
			input:   "127.0.0.1:7946#abc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseNode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseNode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNode_StringRoundTrip(t *testing.T) {
	for _, n := range []Node{
		{Addr: "10.0.0.1:7946"},
		{Addr: "10.0.0.1:7946", UID: 12345},
	} {
		parsed, err := ParseNode(n.String())
		if err != nil {
			t.Fatalf("ParseNode(%q) failed: %v", n.String(), err)
		}
		if parsed != n {
			t.Errorf("round trip of %v produced %v", n, parsed)
		}
	}
}

func TestNewNode(t *testing.T) {
	a := NewNode("127.0.0.1:7946")
	b := NewNode("127.0.0.1:7946")
	if !a.HasUID() || !b.HasUID() {
		t.Error("NewNode must mint a non-zero UID")
	}
	if a.UID == b.UID {
		t.Errorf("two NewNode calls produced the same UID %d", a.UID)
	}
	if a.WithoutUID() != (Node{Addr: "127.0.0.1:7946"}) {
		t.Errorf("WithoutUID() = %v", a.WithoutUID())
	}
}
