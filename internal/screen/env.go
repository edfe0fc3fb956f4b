package screen

import (
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/insights"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/journal"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
)

// Env carries the dependencies shared by all dashboard screens.
type Env struct {
	Repo     *roster.Repository
	Journal  *journal.Log
	Insights *insights.Service
	Filter   *Filter
}

// Filter is the chapter filter shared by the chapter tree and the student
// list. The zero value means "all chapters".
type Filter struct {
	chapter string
}

// Chapter returns the selected chapter, or nil when unfiltered.
func (f *Filter) Chapter() *string {
	if f == nil || f.chapter == "" {
		return nil
	}
	c := f.chapter
	return &c
}

// Toggle selects name, or clears the filter if name is already selected.
func (f *Filter) Toggle(name string) {
	if f.chapter == name {
		f.chapter = ""
		return
	}
	f.chapter = name
}

// Clear removes the filter.
func (f *Filter) Clear() {
	f.chapter = ""
}
