package sim

import "fmt"

// recorderProc appends "label@time" to a shared log each time the
// scheduler resumes it. Used to assert firing order and clock values.
type recorderProc struct {
	label string
	log   *[]string
}

func (p *recorderProc) Resume(s *Scheduler) {
	*p.log = append(*p.log, fmt.Sprintf("%s@%g", p.label, s.Now()))
}

// releaserProc releases one grant on a resource when resumed. Used to
// free capacity at a controlled virtual time.
type releaserProc struct {
	r *Resource
}

func (p *releaserProc) Resume(s *Scheduler) {
	p.r.Release(s)
}

// acquirerProc requests a grant when resumed and records the grant time
// once it obtains one. It releases nothing, so grants stay held.
type acquirerProc struct {
	label     string
	r         *Resource
	requested bool
	grants    *[]string
}

func (p *acquirerProc) Resume(s *Scheduler) {
	if !p.requested {
		p.requested = true
		if p.r.Acquire(p) {
			*p.grants = append(*p.grants, fmt.Sprintf("%s@%g", p.label, s.Now()))
		}
		return
	}
	// woken by Release: the grant is already ours
	*p.grants = append(*p.grants, fmt.Sprintf("%s@%g", p.label, s.Now()))
}
