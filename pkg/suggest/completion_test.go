package suggest

import "testing"

func newTestCompleter() *Completer {
	c := NewCompleter()
	c.AddEntry("the", 1000)
	c.AddEntry("they", 400)
	c.AddEntry("them", 300)
	c.AddEntry("theme", 50)
	c.AddEntry("therefore", 20)
	c.AddEntry("other", 600)
	return c
}

func TestComplete(t *testing.T) {
	c := newTestCompleter()
	got := c.Complete("the", 3)
	want := []string{"they", "them", "theme"}
	if len(got) != len(want) {
		t.Fatalf("Complete returned %d results; want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Word != w {
			t.Errorf("result %d = %q; want %q", i, got[i].Word, w)
		}
	}
}

func TestCompleteExcludesInput(t *testing.T) {
	c := newTestCompleter()
	for _, s := range c.Complete("the", 10) {
		if s.Word == "the" {
			t.Error("input word should never be suggested")
		}
	}
}

func TestCompleteNoMatches(t *testing.T) {
	c := newTestCompleter()
	if got := c.Complete("zzz", 10); got != nil {
		t.Errorf("Complete for unmatched prefix = %v; want nil", got)
	}
}

func TestCompleteAppliesCapitalization(t *testing.T) {
	c := newTestCompleter()
	got := c.Complete("The", 2)
	if len(got) == 0 {
		t.Fatal("expected suggestions for capitalized prefix")
	}
	if got[0].Word != "They" {
		t.Errorf("top suggestion = %q; want %q", got[0].Word, "They")
	}
}

func TestAddEntryReplacesCount(t *testing.T) {
	c := NewCompleter()
	c.AddEntry("word", 5)
	c.AddEntry("word", 50)
	if c.WordCount() != 1 {
		t.Errorf("WordCount = %d; want 1", c.WordCount())
	}
	got := c.Complete("wor", 1)
	if len(got) != 1 || got[0].Count != 50 {
		t.Errorf("Complete = %v; want single result with count 50", got)
	}
}

func TestCompleteTiesSortedAlphabetically(t *testing.T) {
	c := NewCompleter()
	c.AddEntry("preview", 10)
	c.AddEntry("prefix", 10)
	c.AddEntry("press", 10)
	got := c.Complete("pre", 10)
	want := []string{"prefix", "press", "preview"}
	for i, w := range want {
		if got[i].Word != w {
			t.Errorf("result %d = %q; want %q", i, got[i].Word, w)
		}
	}
}
