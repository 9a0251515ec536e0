package view

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestClassList(t *testing.T) {
	n := NewElement("li")
	n.AddClass("a", "b", "a", "")
	if got := strings.Join(n.Classes(), " "); got != "a b" {
		t.Errorf("classes = %q, want %q", got, "a b")
	}

	if !n.ToggleClass("c") || !n.HasClass("c") {
		t.Error("ToggleClass(c) should add c")
	}
	if n.ToggleClass("c") || n.HasClass("c") {
		t.Error("second ToggleClass(c) should remove c")
	}

	n.RemoveClass("a", "missing")
	if got := strings.Join(n.Classes(), " "); got != "b" {
		t.Errorf("classes = %q, want b", got)
	}
}

func TestAppendMovesNode(t *testing.T) {
	a := NewElement("ul")
	b := NewElement("ul")
	li := NewElement("li")

	a.Append(li)
	b.Append(li)

	if a.ChildCount() != 0 {
		t.Errorf("old parent still has %d children", a.ChildCount())
	}
	if li.Parent() != b || b.ChildCount() != 1 {
		t.Error("node not attached to new parent")
	}
}

func TestRemove(t *testing.T) {
	ul := NewElement("ul")
	first, second := NewElement("li"), NewElement("li")
	ul.Append(first, second)

	first.Remove()
	if ul.ChildCount() != 1 || ul.Children()[0] != second {
		t.Fatalf("children after remove = %d", ul.ChildCount())
	}
	if first.Parent() != nil {
		t.Error("removed node still has a parent")
	}

	// Removing a detached node is a no-op.
	first.Remove()
	if ul.ChildCount() != 1 {
		t.Error("second remove changed the parent")
	}
}

func TestContainsAndFind(t *testing.T) {
	root := NewElement("div")
	form := NewElement("form")
	input := NewElement("input")
	form.Append(input)
	root.Append(NewElement("h2"), form)

	if !root.Contains(input) {
		t.Error("root should contain input")
	}
	if form.Contains(root) {
		t.Error("form should not contain root")
	}
	if root.Find("input") != input {
		t.Error("Find(input) failed")
	}
	if root.Find("ul") != nil {
		t.Error("Find(ul) should be nil")
	}
	if len(root.FindAll("form")) != 1 {
		t.Error("FindAll(form) should return one node")
	}
}

func TestTextContent(t *testing.T) {
	li := NewElement("li")
	li.SetText("Buy milk")
	btn := NewElement("button")
	btn.SetText("Done")
	li.Append(btn)

	if li.Text() != "Buy milk" {
		t.Errorf("Text() = %q", li.Text())
	}
	if li.TextContent() != "Buy milkDone" {
		t.Errorf("TextContent() = %q", li.TextContent())
	}
}

func TestDispatch(t *testing.T) {
	n := NewElement("form")
	var order []string
	n.AddEventListener(EventSubmit, func(ev *Event) {
		order = append(order, "first")
		ev.PreventDefault()
		ev.Fail(errors.New("boom"))
	})
	n.AddEventListener(EventSubmit, func(ev *Event) {
		order = append(order, "second")
		ev.Fail(errors.New("ignored"))
		ev.Detail = 42
	})
	n.AddEventListener(EventClick, func(*Event) {
		order = append(order, "click")
	})

	ev := n.Dispatch(NewEvent(context.Background(), EventSubmit))
	if strings.Join(order, ",") != "first,second" {
		t.Errorf("order = %v", order)
	}
	if !ev.DefaultPrevented() {
		t.Error("default not prevented")
	}
	if ev.Err() == nil || ev.Err().Error() != "boom" {
		t.Errorf("Err() = %v, want boom", ev.Err())
	}
	if ev.Detail != 42 || ev.Target != n {
		t.Errorf("Detail = %v, Target = %p", ev.Detail, ev.Target)
	}
}

func TestClickIgnoredWhenDisabled(t *testing.T) {
	btn := NewElement("button")
	clicks := 0
	btn.AddEventListener(EventClick, func(*Event) { clicks++ })

	btn.SetDisabled(true)
	btn.Click(context.Background())
	if clicks != 0 {
		t.Errorf("disabled button got %d clicks", clicks)
	}

	btn.SetDisabled(false)
	btn.Click(context.Background())
	if clicks != 1 {
		t.Errorf("enabled button got %d clicks, want 1", clicks)
	}
}

func TestOutline(t *testing.T) {
	root := NewElement("div")
	h := NewElement("h2")
	h.SetText("Tasks")
	form := NewElement("form")
	form.AddClass("input-group")
	input := NewElement("input")
	input.SetAttr(AttrPlaceholder, "New task")
	btn := NewElement("button")
	btn.SetText("Add")
	btn.SetDisabled(true)
	form.Append(input, btn)
	root.Append(h, form)

	want := `div
  h2 "Tasks"
  form.input-group
    input placeholder="New task" value=""
    button [disabled] "Add"
`
	if got := Outline(root); got != want {
		t.Errorf("Outline mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}
