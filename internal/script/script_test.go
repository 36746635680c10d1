package script

import "testing"

func TestParse(t *testing.T) {
	input := `# place two robots
PLACE 0,0,NORTH
MOVE

  // switch back
PLACE 1,1,SOUTH
ROBOT 1
REPORT
`
	want := []Line{
		{2, "PLACE 0,0,NORTH"},
		{3, "MOVE"},
		{6, "PLACE 1,1,SOUTH"},
		{7, "ROBOT 1"},
		{8, "REPORT"},
	}
	got, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines want %d: %v", len(got), len(want), got)
	}
	for i, tt := range want {
		if got[i] != tt {
			t.Errorf("line[%d]=%+v want %+v", i, got[i], tt)
		}
	}
}

func TestParseKeepsTextVerbatim(t *testing.T) {
	got, err := Parse([]byte("REPORT \r\nPLACE 0,0,NORTH\r\n MOVE"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"REPORT ", "PLACE 0,0,NORTH", " MOVE"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i, text := range want {
		if got[i].Text != text {
			t.Errorf("line[%d]=%q want %q", i, got[i].Text, text)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no lines, got %v", got)
	}
}
