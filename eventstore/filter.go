package eventstore

import (
	"cmp"
	"slices"
)

type FilterEventTypeString = string
type FilterKeyString = string
type FilterValString = string

/***** Filter *****/

// Filter selects a dynamic event stream. Its items are OR-ed; an empty Filter selects every event.
type Filter struct {
	items []FilterItem
}

func (f Filter) Items() []FilterItem {
	return f.items
}

/***** FilterItem *****/

// FilterItem matches an event when its type is one of EventTypes (or EventTypes is empty)
// AND its payload satisfies the Predicates (any or all of them, or Predicates is empty).
type FilterItem struct {
	eventTypes             []FilterEventTypeString
	predicates             []FilterPredicate
	allPredicatesMustMatch bool
}

func (fi FilterItem) EventTypes() []FilterEventTypeString {
	return fi.eventTypes
}

func (fi FilterItem) Predicates() []FilterPredicate {
	return fi.predicates
}

func (fi FilterItem) AllPredicatesMustMatch() bool {
	return fi.allPredicatesMustMatch
}

/***** FilterPredicate *****/

// FilterPredicate compares a top-level payload field with a string value.
type FilterPredicate struct {
	key FilterKeyString
	val FilterValString
}

// P is a short factory for FilterPredicate.
func P(key FilterKeyString, val FilterValString) FilterPredicate {
	return FilterPredicate{key: key, val: val}
}

func (fp FilterPredicate) Key() FilterKeyString {
	return fp.key
}

func (fp FilterPredicate) Val() FilterValString {
	return fp.val
}

/***** FilterBuilder *****/

// FilterBuilder guides the construction of a Filter so that only combinations which make sense
// for a lending journal can be built:
//
//   - empty filter
//   - (eventType OR eventType...)
//   - (predicate OR predicate...)
//   - (predicate AND predicate...)
//   - ((eventType OR eventType...) AND (predicate OR predicate...))
//   - ((eventType OR eventType...) AND (predicate AND predicate...))
//   - any of the above OR-ed with each other -> multiple FilterItem(s)
type FilterBuilder interface {
	// Matching starts a new FilterItem.
	Matching() EmptyFilterItemBuilder

	// MatchingAnyEvent directly creates an empty Filter.
	MatchingAnyEvent() Filter
}

type EmptyFilterItemBuilder interface {
	AnyEventTypeOf(eventType FilterEventTypeString, eventTypes ...FilterEventTypeString) FilterItemBuilderLackingPredicates
	AnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilderLackingEventTypes
	AllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilderLackingEventTypes
}

type FilterItemBuilderLackingPredicates interface {
	AndAnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterItemBuilder
	AndAllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterItemBuilder
	OrMatching() EmptyFilterItemBuilder
	Finalize() Filter
}

type FilterItemBuilderLackingEventTypes interface {
	AndAnyEventTypeOf(eventType FilterEventTypeString, eventTypes ...FilterEventTypeString) CompletedFilterItemBuilder
	OrMatching() EmptyFilterItemBuilder
	Finalize() Filter
}

type CompletedFilterItemBuilder interface {
	OrMatching() EmptyFilterItemBuilder
	Finalize() Filter
}

// filterBuilder implements all the interfaces of FilterBuilder.
// It is a value type, so every step works on a copy and partially built filters can be reused.
type filterBuilder struct {
	filter            Filter
	currentFilterItem FilterItem
}

// BuildEventFilter creates a FilterBuilder which must eventually be finalized with Finalize() or MatchingAnyEvent().
func BuildEventFilter() FilterBuilder {
	return filterBuilder{}
}

// Matching starts a new FilterItem.
func (fb filterBuilder) Matching() EmptyFilterItemBuilder {
	fb.currentFilterItem = FilterItem{}

	return fb
}

// AnyEventTypeOf adds event types to the current FilterItem, dropping empty and duplicate ones.
func (fb filterBuilder) AnyEventTypeOf(
	eventType FilterEventTypeString,
	eventTypes ...FilterEventTypeString,
) FilterItemBuilderLackingPredicates {

	fb.currentFilterItem.eventTypes = sanitizeEventTypes(
		append(slices.Clone(fb.currentFilterItem.eventTypes), append([]FilterEventTypeString{eventType}, eventTypes...)...),
	)

	return fb
}

// AndAnyEventTypeOf is AnyEventTypeOf after predicates were given.
func (fb filterBuilder) AndAnyEventTypeOf(
	eventType FilterEventTypeString,
	eventTypes ...FilterEventTypeString,
) CompletedFilterItemBuilder {

	return fb.AnyEventTypeOf(eventType, eventTypes...)
}

// AnyPredicateOf adds predicates of which at least one must match.
// Predicates with an empty key or value are dropped.
func (fb filterBuilder) AnyPredicateOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) FilterItemBuilderLackingEventTypes {

	fb.currentFilterItem.predicates = sanitizePredicates(
		append(slices.Clone(fb.currentFilterItem.predicates), append([]FilterPredicate{predicate}, predicates...)...),
	)

	return fb
}

// AndAnyPredicateOf is AnyPredicateOf after event types were given.
func (fb filterBuilder) AndAnyPredicateOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) CompletedFilterItemBuilder {

	return fb.AnyPredicateOf(predicate, predicates...)
}

// AllPredicatesOf adds predicates which must all match.
func (fb filterBuilder) AllPredicatesOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) FilterItemBuilderLackingEventTypes {

	fb.currentFilterItem.allPredicatesMustMatch = true

	return fb.AnyPredicateOf(predicate, predicates...)
}

// AndAllPredicatesOf is AllPredicatesOf after event types were given.
func (fb filterBuilder) AndAllPredicatesOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) CompletedFilterItemBuilder {

	return fb.AllPredicatesOf(predicate, predicates...)
}

// OrMatching finalizes the current FilterItem and starts a new one.
func (fb filterBuilder) OrMatching() EmptyFilterItemBuilder {
	fb.filter.items = append(slices.Clone(fb.filter.items), fb.currentFilterItem)
	fb.currentFilterItem = FilterItem{}

	return fb
}

// MatchingAnyEvent directly creates an empty filter.
func (fb filterBuilder) MatchingAnyEvent() Filter {
	return Filter{}
}

// Finalize returns the Filter including the current FilterItem.
func (fb filterBuilder) Finalize() Filter {
	fb.filter.items = append(slices.Clone(fb.filter.items), fb.currentFilterItem)

	return fb.filter
}

func sanitizeEventTypes(eventTypes []FilterEventTypeString) []FilterEventTypeString {
	eventTypes = slices.DeleteFunc(eventTypes, func(e FilterEventTypeString) bool { return e == "" })
	slices.Sort(eventTypes)

	return slices.Clip(slices.Compact(eventTypes))
}

func sanitizePredicates(predicates []FilterPredicate) []FilterPredicate {
	predicates = slices.DeleteFunc(predicates, func(p FilterPredicate) bool { return p.key == "" || p.val == "" })
	slices.SortFunc(predicates, func(a, b FilterPredicate) int {
		if c := cmp.Compare(a.key, b.key); c != 0 {
			return c
		}

		return cmp.Compare(a.val, b.val)
	})

	return slices.Clip(slices.Compact(predicates))
}
