// Package scheduler runs the queue and billing jobs on fixed intervals inside one process.
package scheduler

import (
	"context"
	"time"
)

// Job is one periodic task.
type Job interface {
	Name() string
	Interval() time.Duration
	Run(ctx context.Context) error
}

type funcJob struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

// NewJob adapts a function into a Job.
func NewJob(name string, interval time.Duration, run func(ctx context.Context) error) Job {
	return &funcJob{name: name, interval: interval, run: run}
}

func (j *funcJob) Name() string                  { return j.name }
func (j *funcJob) Interval() time.Duration       { return j.interval }
func (j *funcJob) Run(ctx context.Context) error { return j.run(ctx) }

// Registry tracks registered jobs in registration order.
type Registry struct {
	jobs []Job
}

// NewRegistry builds a registry preloaded with jobs; nil entries are ignored.
func NewRegistry(jobs ...Job) *Registry {
	registry := &Registry{}
	for _, job := range jobs {
		registry.Register(job)
	}

	return registry
}

// Register adds a job to the registry.
func (r *Registry) Register(job Job) {
	if job == nil {
		return
	}
	r.jobs = append(r.jobs, job)
}

// Jobs returns a copy of the registered jobs.
func (r *Registry) Jobs() []Job {
	jobs := make([]Job, len(r.jobs))
	copy(jobs, r.jobs)

	return jobs
}
