package hooks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/entities"
)

// tagHandler records its tag into a shared trace when applied
type tagHandler struct {
	tag   string
	trace *[]string
	apply func(ctx *hooks.Context, binding hooks.Binding)
}

func (h *tagHandler) Apply(ctx *hooks.Context, binding hooks.Binding) {
	if h.trace != nil {
		*h.trace = append(*h.trace, h.tag)
	}
	if h.apply != nil {
		h.apply(ctx, binding)
	}
}

func (h *tagHandler) CloneHandler() hooks.Handler {
	clone := *h
	return &clone
}

func TestList_EntriesSortedByPriorityStable(t *testing.T) {
	list := hooks.NewList()
	list.Add(10, &tagHandler{tag: "a"})
	list.Add(0, &tagHandler{tag: "b"})
	list.Add(10, &tagHandler{tag: "c"})
	list.Add(-5, &tagHandler{tag: "d"})

	entries := list.Entries()
	require.Len(t, entries, 4)

	tags := make([]string, 0, 4)
	for _, e := range entries {
		tags = append(tags, e.Handler.(*tagHandler).tag)
	}
	assert.Equal(t, []string{"d", "b", "a", "c"}, tags)
}

func TestList_MergePreservesSourceOrder(t *testing.T) {
	first := hooks.NewList()
	first.Add(0, &tagHandler{tag: "f1"})
	first.Add(5, &tagHandler{tag: "f2"})

	second := hooks.NewList()
	second.Add(0, &tagHandler{tag: "s1"})
	second.Add(0, &tagHandler{tag: "s2"})

	first.Merge(second)
	entries := first.Entries()

	tags := make([]string, 0, len(entries))
	for _, e := range entries {
		tags = append(tags, e.Handler.(*tagHandler).tag)
	}
	// Priority 0 entries keep merge order (f1, then second's internal
	// order), priority 5 comes last.
	assert.Equal(t, []string{"f1", "s1", "s2", "f2"}, tags)
}

func TestList_CloneIsDeep(t *testing.T) {
	list := hooks.NewList()
	original := &tagHandler{tag: "x"}
	list.Add(0, original)

	clone := list.Clone()
	require.Equal(t, 1, clone.Len())

	cloned := clone.Entries()[0].Handler.(*tagHandler)
	assert.NotSame(t, original, cloned)
	assert.Equal(t, "x", cloned.tag)
}

func TestList_AllBaseline(t *testing.T) {
	list := hooks.NewList()
	list.Add(hooks.PriorityBaseline, &tagHandler{tag: "a"})
	assert.True(t, list.AllBaseline())

	list.Add(hooks.PriorityAdjust, &tagHandler{tag: "b"})
	assert.False(t, list.AllBaseline())
}

func TestGather_TieBreakByContributionOrder(t *testing.T) {
	var trace []string

	ability := hooks.NewList()
	ability.Add(0, &tagHandler{tag: "ability", trace: &trace})

	item := hooks.NewList()
	item.Add(0, &tagHandler{tag: "item", trace: &trace})
	item.Add(0, &tagHandler{tag: "item2", trace: &trace})

	status := hooks.NewList()
	status.Add(-1, &tagHandler{tag: "status", trace: &trace})

	owner := entities.NewCharacter("c1", "Tester")
	bound := hooks.Gather(
		hooks.Contribution{List: ability, Owner: owner, Character: owner},
		hooks.Contribution{List: item, Owner: owner, Character: owner},
		hooks.Contribution{List: status, Owner: owner, Character: owner},
	)

	ctx := hooks.NewContext(&hooks.Env{})
	hooks.Run(ctx, hooks.BeforeHittings, bound)

	// status has lower priority, then ties follow contribution order
	assert.Equal(t, []string{"status", "ability", "item", "item2"}, trace)
}

func TestGather_SkipsNilLists(t *testing.T) {
	owner := entities.NewCharacter("c1", "Tester")
	bound := hooks.Gather(
		hooks.Contribution{List: nil, Owner: owner, Character: owner},
	)
	assert.Empty(t, bound)
}
