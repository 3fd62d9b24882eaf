package stackvec

// tracked records its id in a shared log when released.
type tracked struct {
	id  int
	log *[]int
}

func (t tracked) Release() { *t.log = append(*t.log, t.id) }

func trackedN(log *[]int, n int) []tracked {
	out := make([]tracked, n)
	for i := range out {
		out[i] = tracked{id: i, log: log}
	}
	return out
}

// handle has a pointer-receiver Release.
type handle struct {
	id    int
	count *int
}

func (h *handle) Release() { *h.count++ }

// catch runs f and returns the error it panicked with, if any.
func catch(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	f()
	return nil
}

// flaky logs its id when released and then panics if fail is set.
type flaky struct {
	id   int
	fail bool
	log  *[]int
}

func (f flaky) Release() {
	*f.log = append(*f.log, f.id)
	if f.fail {
		panic("release failed")
	}
}
