package views

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rpupo63/nexusconsult-backend/hooks"
	"github.com/rpupo63/nexusconsult-backend/models"
)

// Dashboard tabs.
const (
	TabApplications = "applications"
	TabMessages     = "messages"
)

type ApplicationSource interface {
	FindAll(ctx context.Context) ([]models.JobApplication, error)
}

type MessageSource interface {
	FindAll(ctx context.Context) ([]models.ApplicationMessage, error)
	FindForApplication(ctx context.Context, applicationID uuid.UUID) ([]models.ApplicationMessage, error)
}

// ApplicationCard is an application as listed, with its expansion toggle and
// the number of unread company messages in its thread.
type ApplicationCard struct {
	models.JobApplication
	Expanded bool `json:"expanded"`
	Unread   int  `json:"unread"`
}

type DashboardPage struct {
	ActiveTab    string                      `json:"activeTab"`
	Applications []ApplicationCard           `json:"applications"`
	Loading      bool                        `json:"loading"`
	Error        string                      `json:"error,omitempty"`
	Selected     *uuid.UUID                  `json:"selected,omitempty"`
	Thread       []models.ApplicationMessage `json:"thread"`
	ThreadError  string                      `json:"threadError,omitempty"`
}

type applicationsData struct {
	Applications []models.JobApplication
	Unread       map[uuid.UUID]int
}

// Dashboard is the applicant's view of their applications and message threads.
type Dashboard struct {
	applications *hooks.Loader[int, applicationsData]
	thread       *hooks.Loader[uuid.UUID, []models.ApplicationMessage]

	mu       sync.Mutex
	tab      string
	expanded map[uuid.UUID]bool
	selected *uuid.UUID
}

func NewDashboard(apps ApplicationSource, messages MessageSource) *Dashboard {
	loadApps := func(ctx context.Context, _ int) (applicationsData, error) {
		list, err := apps.FindAll(ctx)
		if err != nil {
			return applicationsData{}, err
		}
		data := applicationsData{Applications: list, Unread: map[uuid.UUID]int{}}
		// Unread counts are a side section; a failed read leaves them at zero.
		if all, err := messages.FindAll(ctx); err == nil {
			for _, m := range all {
				if !m.Read && m.SenderType == models.SenderCompany {
					data.Unread[m.ApplicationID]++
				}
			}
		}
		return data, nil
	}

	d := &Dashboard{
		applications: hooks.NewLoader[int, applicationsData](loadApps, applicationsData{}),
		thread:       hooks.NewLoader[uuid.UUID, []models.ApplicationMessage](messages.FindForApplication, []models.ApplicationMessage{}),
		tab:          TabApplications,
		expanded:     map[uuid.UUID]bool{},
	}
	d.applications.Load(0)
	return d
}

// SetTab switches between the applications list and the messages panel.
func (d *Dashboard) SetTab(tab string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if tab == TabApplications || tab == TabMessages {
		d.tab = tab
	}
}

// ToggleExpanded flips the details panel of one application. Only one
// application is expanded at a time.
func (d *Dashboard) ToggleExpanded(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	open := !d.expanded[id]
	d.expanded = map[uuid.UUID]bool{}
	if open {
		d.expanded[id] = true
	}
}

// Select opens an application's thread on the messages tab.
func (d *Dashboard) Select(id uuid.UUID) {
	d.mu.Lock()
	d.selected = &id
	d.tab = TabMessages
	d.mu.Unlock()
	d.thread.Load(id)
}

// Refresh reloads the applications and the open thread.
func (d *Dashboard) Refresh() {
	d.applications.Load(0)
	d.mu.Lock()
	selected := d.selected
	d.mu.Unlock()
	if selected != nil {
		d.thread.Load(*selected)
	}
}

func (d *Dashboard) Close() {
	d.applications.Close()
	d.thread.Close()
}

func (d *Dashboard) Snapshot(ctx context.Context) (DashboardPage, error) {
	apps, err := d.applications.Wait(ctx)
	if err != nil {
		return DashboardPage{}, err
	}
	thread, err := d.thread.Wait(ctx)
	if err != nil {
		return DashboardPage{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	page := DashboardPage{
		ActiveTab:    d.tab,
		Applications: make([]ApplicationCard, 0, len(apps.Data.Applications)),
		Loading:      apps.Loading,
		Error:        apps.Error,
		Selected:     d.selected,
		Thread:       []models.ApplicationMessage{},
	}
	for _, a := range apps.Data.Applications {
		page.Applications = append(page.Applications, ApplicationCard{
			JobApplication: a,
			Expanded:       d.expanded[a.ID],
			Unread:         apps.Data.Unread[a.ID],
		})
	}
	if d.selected != nil {
		page.Thread = thread.Data
		page.ThreadError = thread.Error
	}
	return page, nil
}
