package score

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"mindcraftce.ai/internal/task"
)

// ErrClosed reports a submit against a closed pool.
var ErrClosed = errors.New("score pool closed")

// PathQuery asks for a route between two lattice positions.
type PathQuery struct {
	Start     task.Vec3
	Goal      task.Vec3
	Obstacles []task.Vec3
}

// Request is one unit of work. Exactly one of Path or Rank should be set;
// Path wins when both are.
type Request struct {
	Path *PathQuery
	Rank []Candidate
}

// Response carries the result of one request.
type Response struct {
	Path   []task.Vec3
	Found  bool
	Ranked []Scored
}

type job struct {
	req  Request
	resp chan Response
}

// Pool serves scoring requests from a fixed set of worker goroutines. The
// routines themselves are pure; the pool only bounds CPU concurrency.
type Pool struct {
	jobs   chan job
	wg     sync.WaitGroup
	once   sync.Once
	closed atomic.Bool
}

// NewPool starts workers goroutines. Requests queue up to four deep per
// worker before Submit blocks.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	p := &Pool{jobs: make(chan job, 4*workers)}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				j.resp <- serve(j.req)
			}
		}()
	}
	return p
}

func serve(req Request) Response {
	switch {
	case req.Path != nil:
		path, found := FindPath(req.Path.Start, req.Path.Goal, req.Path.Obstacles)
		return Response{Path: path, Found: found}
	case req.Rank != nil:
		return Response{Ranked: RankStrategies(req.Rank)}
	}
	return Response{}
}

// Submit queues a request and waits for its response. The context bounds
// both the queue wait and the computation wait.
func (p *Pool) Submit(ctx context.Context, req Request) (Response, error) {
	if p == nil || p.closed.Load() {
		return Response{}, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	j := job{req: req, resp: make(chan Response, 1)}
	select {
	case p.jobs <- j:
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}
	select {
	case resp := <-j.resp:
		return resp, nil
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}
}

// Close stops the workers after draining queued requests. Safe to call twice.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.jobs)
		p.wg.Wait()
	})
}
