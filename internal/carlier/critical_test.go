package carlier

import (
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"

	"singleMachine/internal/rpq"
	"singleMachine/internal/schrage"
)

var _ = gc.Suite(new(BlockTestSuite))

type BlockTestSuite struct{}

func (s *BlockTestSuite) TestFindBlock(c *gc.C) {
	// Schrage order for the four-job instance: (133,76,5) runs ahead of (140,7,67).
	pi := rpq.Jobs{{0, 27, 78}, {14, 36, 54}, {133, 76, 5}, {140, 7, 67}}
	blk, err := FindBlock(pi, 283)
	c.Assert(err, gc.IsNil)
	c.Assert(blk, gc.Equals, Block{Start: 2, End: 3, Critical: 2})
	c.Assert(blk.HasCritical(), gc.Equals, true)

	minRelease, minTail, sumDuration := blk.suffix(pi)
	c.Assert(minRelease, gc.Equals, 140)
	c.Assert(minTail, gc.Equals, 67)
	c.Assert(sumDuration, gc.Equals, 7)
}

func (s *BlockTestSuite) TestFindBlockOnSchrageSchedule(c *gc.C) {
	jobs := rpq.Jobs{
		{592, 82, 321}, {547, 18, 687}, {284, 11, 219}, {568, 46, 507}, {189, 76, 604},
		{465, 52, 577}, {234, 53, 732}, {391, 49, 718}, {205, 10, 64}, {157, 29, 176},
		{505, 40, 637}, {211, 21, 326}, {518, 57, 645}, {625, 15, 53}, {500, 51, 66},
		{114, 1, 506}, {454, 91, 167}, {174, 75, 319}, {340, 56, 480}, {184, 61, 69},
	}
	sched, ub, err := schrage.Dispatch(jobs)
	c.Assert(err, gc.IsNil)
	c.Assert(ub, gc.Equals, 1299)

	blk, err := FindBlock(sched.Jobs, ub)
	c.Assert(err, gc.IsNil)
	c.Assert(blk, gc.Equals, Block{Start: 1, End: 10, Critical: 7})

	// The block runs without idle time and realizes Cmax.
	pi := sched.Jobs
	sum := pi[blk.End].Tail
	for _, j := range pi[blk.Start : blk.End+1] {
		sum += j.Duration
	}
	c.Assert(pi[blk.Start].Release+sum, gc.Equals, ub)
	c.Assert(pi[blk.Critical].Tail < pi[blk.End].Tail, gc.Equals, true)
	for _, j := range pi[blk.Critical+1 : blk.End+1] {
		c.Assert(j.Tail >= pi[blk.End].Tail, gc.Equals, true)
	}
}

func (s *BlockTestSuite) TestNoCriticalJob(c *gc.C) {
	pi := rpq.Jobs{{0, 5, 10}, {1, 3, 5}}
	blk, err := FindBlock(pi, 15)
	c.Assert(err, gc.IsNil)
	c.Assert(blk, gc.Equals, Block{Start: 0, End: 0, Critical: -1})
	c.Assert(blk.HasCritical(), gc.Equals, false)
}

func (s *BlockTestSuite) TestLastCriticalEndWins(c *gc.C) {
	// Both jobs realize Cmax=12; b is the later one.
	pi := rpq.Jobs{{0, 2, 10}, {2, 4, 6}}
	blk, err := FindBlock(pi, 12)
	c.Assert(err, gc.IsNil)
	c.Assert(blk.End, gc.Equals, 1)
	c.Assert(blk.Start, gc.Equals, 0)
	c.Assert(blk.Critical, gc.Equals, -1)
}

func (s *BlockTestSuite) TestWrongMakespan(c *gc.C) {
	_, err := FindBlock(rpq.Jobs{{0, 5, 10}}, 99)
	c.Assert(xerrors.Is(err, ErrNoCriticalBlock), gc.Equals, true)

	_, err = FindBlock(nil, 0)
	c.Assert(xerrors.Is(err, rpq.ErrEmptySchedule), gc.Equals, true)
}

func (s *BlockTestSuite) TestPinRestores(c *gc.C) {
	pi := rpq.Jobs{{1, 2, 3}, {4, 5, 6}}
	func() {
		defer pin(&pi[1])()
		pi[1].Release = 40
		pi[1].Tail = 60
	}()
	c.Assert(pi, gc.DeepEquals, rpq.Jobs{{1, 2, 3}, {4, 5, 6}})
}

func (s *BlockTestSuite) TestBranchRestoresOnError(c *gc.C) {
	cfg := DefaultConfig()
	c.Assert(cfg.Validate(), gc.IsNil)

	best := 1 << 30
	srch := &searcher{ctx: nil, log: cfg.Logger, maxDepth: 0, best: &best}
	pi := rpq.Jobs{{0, 27, 78}, {14, 36, 54}, {133, 76, 5}, {140, 7, 67}}

	// maxDepth 0 makes the nested search fail with ErrDepthExceeded.
	err := srch.branch(cfg.Logger, pi, 2, func(j *rpq.Job) { j.Release = 147 }, 0)
	c.Assert(xerrors.Is(err, ErrDepthExceeded), gc.Equals, true)
	c.Assert(pi[2], gc.Equals, rpq.Job{Release: 133, Duration: 76, Tail: 5})
}
