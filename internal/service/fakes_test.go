package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"hrdashboard/internal/model"
)

// memStore is an in-memory stand-in for the relational store.
type memStore struct {
	mu      sync.Mutex
	clock   time.Time
	nextJob uint
	nextApp uint
	jobs    map[uint]model.Job
	apps    []model.Application
}

func newMemStore() *memStore {
	return &memStore{
		clock: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		jobs:  map[uint]model.Job{},
	}
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

type memJobRepo struct{ s *memStore }

func (r memJobRepo) Create(_ context.Context, job *model.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextJob++
	job.ID = r.s.nextJob
	job.CreatedAt = r.s.tick()
	job.UpdatedAt = job.CreatedAt
	r.s.jobs[job.ID] = *job
	return nil
}

func (r memJobRepo) Update(_ context.Context, id uint, f model.JobFields) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	job, ok := r.s.jobs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	job.Title, job.Description, job.Location, job.JobType = f.Title, f.Description, f.Location, f.JobType
	r.s.jobs[id] = job
	return nil
}

func (r memJobRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.jobs, id)
	return nil
}

func (r memJobRepo) FindByID(_ context.Context, id uint) (*model.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	job, ok := r.s.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &job, nil
}

func (r memJobRepo) List(_ context.Context) ([]model.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	jobs := make([]model.Job, 0, len(r.s.jobs))
	for _, j := range r.s.jobs {
		jobs = append(jobs, j)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
	return jobs, nil
}

func (r memJobRepo) ListOptions(ctx context.Context) ([]model.JobOption, error) {
	jobs, _ := r.List(ctx)
	opts := make([]model.JobOption, 0, len(jobs))
	for _, j := range jobs {
		opts = append(opts, model.JobOption{ID: j.ID, Title: j.Title})
	}
	return opts, nil
}

func (r memJobRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.jobs)), nil
}

type memAppRepo struct{ s *memStore }

func (r memAppRepo) Create(_ context.Context, app *model.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextApp++
	app.ID = r.s.nextApp
	app.CreatedAt = r.s.tick()
	stored := *app
	stored.Job = nil
	r.s.apps = append(r.s.apps, stored)
	return nil
}

func (r memAppRepo) List(_ context.Context, jobID *uint) ([]model.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Application
	for i := len(r.s.apps) - 1; i >= 0; i-- {
		app := r.s.apps[i]
		if jobID != nil && app.JobID != *jobID {
			continue
		}
		if job, ok := r.s.jobs[app.JobID]; ok {
			app.Job = &job
		}
		out = append(out, app)
	}
	return out, nil
}

func (r memAppRepo) FindByResumeKey(_ context.Context, key string) (*model.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, app := range r.s.apps {
		if app.ResumeKey != nil && *app.ResumeKey == key {
			return &app, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memAppRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.apps)), nil
}
