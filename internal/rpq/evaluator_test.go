package rpq_test

import (
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"

	"singleMachine/internal/rpq"
)

var _ = gc.Suite(new(ScheduleTestSuite))

type ScheduleTestSuite struct{}

func (s *ScheduleTestSuite) TestMakespanTwoJobs(c *gc.C) {
	sched := rpq.NewSchedule(rpq.Jobs{{10, 5, 7}, {13, 6, 26}})
	c.Assert(sched.Completions(), gc.DeepEquals, []int{15, 21})

	ms, err := sched.Makespan()
	c.Assert(err, gc.IsNil)
	c.Assert(ms, gc.Equals, 47)
}

func (s *ScheduleTestSuite) TestMakespanFixedOrders(c *gc.C) {
	specs := []struct {
		descr string
		order rpq.Jobs
		exp   int
	}{
		{
			descr: "natural order",
			order: rpq.Jobs{{10, 5, 7}, {13, 6, 26}, {11, 7, 24}, {20, 4, 21}, {30, 3, 8}, {0, 6, 17}, {30, 2, 0}},
			exp:   58,
		},
		{
			descr: "schrage order",
			order: rpq.Jobs{{0, 6, 17}, {10, 5, 7}, {13, 6, 26}, {11, 7, 24}, {20, 4, 21}, {30, 3, 8}, {30, 2, 0}},
			exp:   53,
		},
		{
			descr: "optimal order",
			order: rpq.Jobs{{0, 6, 17}, {11, 7, 24}, {13, 6, 26}, {20, 4, 21}, {10, 5, 7}, {30, 3, 8}, {30, 2, 0}},
			exp:   50,
		},
		{
			descr: "ten jobs",
			order: rpq.Jobs{{2, 20, 88}, {5, 14, 125}, {8, 16, 114}, {9, 28, 94}, {70, 4, 93}, {71, 7, 71}, {52, 1, 56}, {52, 20, 56}, {112, 22, 79}, {90, 2, 13}},
			exp:   213,
		},
		{
			descr: "twenty jobs",
			order: rpq.Jobs{
				{15, 86, 700}, {51, 52, 403}, {144, 73, 536}, {183, 17, 641}, {226, 5, 629},
				{162, 80, 575}, {103, 68, 470}, {394, 34, 400}, {35, 37, 386}, {39, 38, 340},
				{162, 52, 241}, {556, 23, 79}, {567, 71, 618}, {588, 45, 632}, {598, 45, 200},
				{728, 18, 640}, {715, 8, 93}, {667, 80, 92}, {57, 21, 76}, {233, 68, 23},
			},
			exp: 1399,
		},
	}

	for i, spec := range specs {
		c.Logf("[spec %d] %s", i, spec.descr)
		ms, err := rpq.NewSchedule(spec.order).Makespan()
		c.Assert(err, gc.IsNil)
		c.Assert(ms, gc.Equals, spec.exp, gc.Commentf("%s", spec.descr))
	}
}

func (s *ScheduleTestSuite) TestMakespanSingleJob(c *gc.C) {
	j := rpq.Job{Release: 4, Duration: 3, Tail: 9}
	c.Assert(rpq.NewSchedule(rpq.Jobs{j}).MustMakespan(), gc.Equals, j.TotalTime())
}

func (s *ScheduleTestSuite) TestMakespanEmptySchedule(c *gc.C) {
	_, err := rpq.NewSchedule(nil).Makespan()
	c.Assert(xerrors.Is(err, rpq.ErrEmptySchedule), gc.Equals, true)

	c.Assert(func() { rpq.NewSchedule(rpq.Jobs{}).MustMakespan() }, gc.PanicMatches, ".*расписание пусто.*")
}

func (s *ScheduleTestSuite) TestValidatePermutation(c *gc.C) {
	set := rpq.Jobs{{1, 2, 3}, {4, 5, 6}, {1, 2, 3}}

	c.Assert(rpq.ValidatePermutation(rpq.Jobs{{1, 2, 3}, {1, 2, 3}, {4, 5, 6}}, set), gc.IsNil)

	err := rpq.ValidatePermutation(rpq.Jobs{{1, 2, 3}, {4, 5, 6}}, set)
	c.Assert(xerrors.Is(err, rpq.ErrNotPermutation), gc.Equals, true)

	err = rpq.ValidatePermutation(rpq.Jobs{{1, 2, 3}, {4, 5, 6}, {4, 5, 6}}, set)
	c.Assert(xerrors.Is(err, rpq.ErrNotPermutation), gc.Equals, true)
}

func (s *ScheduleTestSuite) TestEvaluatorByIndex(c *gc.C) {
	inst, err := rpq.NewInstance("pair", rpq.Jobs{{10, 5, 7}, {13, 6, 20}})
	c.Assert(err, gc.IsNil)
	eval, err := rpq.NewEvaluator(inst)
	c.Assert(err, gc.IsNil)

	c.Assert(eval.MustMakespan([]int{0, 1}), gc.Equals, 41)
	c.Assert(eval.MustMakespan([]int{1, 0}), gc.Equals, 39)
	c.Assert(eval.Order([]int{1, 0}), gc.DeepEquals, rpq.Jobs{{13, 6, 20}, {10, 5, 7}})

	_, err = eval.Makespan([]int{0, 0})
	c.Assert(xerrors.Is(err, rpq.ErrNotPermutation), gc.Equals, true)
	_, err = eval.Makespan([]int{0, 2})
	c.Assert(xerrors.Is(err, rpq.ErrNotPermutation), gc.Equals, true)
	_, err = eval.Makespan([]int{0})
	c.Assert(xerrors.Is(err, rpq.ErrNotPermutation), gc.Equals, true)
}

func (s *ScheduleTestSuite) TestIndexOrderHandlesDuplicates(c *gc.C) {
	set := rpq.Jobs{{1, 2, 3}, {4, 5, 6}, {1, 2, 3}}

	perm, err := rpq.IndexOrder(rpq.Jobs{{1, 2, 3}, {4, 5, 6}, {1, 2, 3}}, set)
	c.Assert(err, gc.IsNil)
	c.Assert(perm, gc.DeepEquals, []int{0, 1, 2})

	perm, err = rpq.IndexOrder(rpq.Jobs{{4, 5, 6}, {1, 2, 3}, {1, 2, 3}}, set)
	c.Assert(err, gc.IsNil)
	c.Assert(perm, gc.DeepEquals, []int{1, 0, 2})

	_, err = rpq.IndexOrder(rpq.Jobs{{4, 5, 6}, {4, 5, 6}, {1, 2, 3}}, set)
	c.Assert(xerrors.Is(err, rpq.ErrNotPermutation), gc.Equals, true)
}
