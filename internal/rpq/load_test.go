package rpq_test

import (
	"math/rand"
	"os"
	"path/filepath"

	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"

	"singleMachine/internal/rpq"
)

var _ = gc.Suite(new(LoadTestSuite))

type LoadTestSuite struct{}

var fourJobs = rpq.Jobs{{0, 27, 78}, {140, 7, 67}, {14, 36, 54}, {133, 76, 5}}

func (s *LoadTestSuite) TestParseText(c *gc.C) {
	data := []byte("4\n0 27 78\n140 7 67\n14 36 54\n133 76 5\n")
	inst, err := rpq.Parse(data, rpq.FormatText)
	c.Assert(err, gc.IsNil)
	c.Assert(inst.Jobs, gc.DeepEquals, fourJobs)
}

func (s *LoadTestSuite) TestParseTextWrongCount(c *gc.C) {
	_, err := rpq.Parse([]byte("3\n1 2 3\n4 5 6\n"), rpq.FormatText)
	c.Assert(err, gc.ErrorMatches, ".*ожидалось 9 значений.*")

	_, err = rpq.Parse([]byte("1\n0 1 1\n5 5 5\n9"), rpq.FormatText)
	c.Assert(err, gc.ErrorMatches, ".*ожидалось 3 значений \\(получено 7\\).*")

	_, err = rpq.Parse([]byte("0\n"), rpq.FormatText)
	c.Assert(xerrors.Is(err, rpq.ErrEmptyInput), gc.Equals, true)
}

func (s *LoadTestSuite) TestParseYAML(c *gc.C) {
	data := []byte(`name: ex2
jobs:
  - {r: 0, p: 27, q: 78}
  - {r: 140, p: 7, q: 67}
  - {r: 14, p: 36, q: 54}
  - {r: 133, p: 76, q: 5}
`)
	inst, err := rpq.Parse(data, rpq.FormatYAML)
	c.Assert(err, gc.IsNil)
	c.Assert(inst.Name, gc.Equals, "ex2")
	c.Assert(inst.Jobs, gc.DeepEquals, fourJobs)
}

func (s *LoadTestSuite) TestParseJSON(c *gc.C) {
	data := []byte(`{"name": "mixed", "jobs": [[0, 27, 78], {"r": 140, "p": 7, "q": 67}, [14, 36, 54], {"r": 133, "p": 76, "q": 5}]}`)
	inst, err := rpq.Parse(data, rpq.FormatJSON)
	c.Assert(err, gc.IsNil)
	c.Assert(inst.Name, gc.Equals, "mixed")
	c.Assert(inst.Jobs, gc.DeepEquals, fourJobs)

	_, err = rpq.Parse([]byte(`{"jobs": [[1, 2]]}`), rpq.FormatJSON)
	c.Assert(err, gc.ErrorMatches, ".*ожидалось 3 значения.*")

	_, err = rpq.Parse([]byte(`{"jobs": [`), rpq.FormatJSON)
	c.Assert(err, gc.ErrorMatches, ".*некорректный документ.*")
}

func (s *LoadTestSuite) TestParseJSONRejectsMalformedValues(c *gc.C) {
	specs := []struct {
		descr string
		doc   string
	}{
		{descr: "string value", doc: `{"jobs":[{"r":"abc","p":3,"q":1}]}`},
		{descr: "missing keys", doc: `{"jobs":[{"p":3}]}`},
		{descr: "fractional values", doc: `{"jobs":[[1.9,2.7,3.5]]}`},
		{descr: "boolean value", doc: `{"jobs":[[true,2,3]]}`},
		{descr: "null value", doc: `{"jobs":[{"r":0,"p":null,"q":1}]}`},
		{descr: "numeric string", doc: `{"jobs":[["1",2,3]]}`},
	}
	for _, spec := range specs {
		c.Log(spec.descr)
		_, err := rpq.Parse([]byte(spec.doc), rpq.FormatJSON)
		c.Assert(xerrors.Is(err, rpq.ErrBadValue), gc.Equals, true, gc.Commentf("%s: %v", spec.descr, err))
	}

	inst, err := rpq.Parse([]byte(`{"jobs":[[1.0,2,3e0]]}`), rpq.FormatJSON)
	c.Assert(err, gc.IsNil)
	c.Assert(inst.Jobs, gc.DeepEquals, rpq.Jobs{{1, 2, 3}})
}

func (s *LoadTestSuite) TestParseRejectsInvalidJobs(c *gc.C) {
	_, err := rpq.Parse([]byte("1\n0 0 5\n"), rpq.FormatText)
	c.Assert(xerrors.Is(err, rpq.ErrNonPositiveDuration), gc.Equals, true)
}

func (s *LoadTestSuite) TestParseUnknownFormat(c *gc.C) {
	_, err := rpq.Parse([]byte("1\n1 1 1\n"), rpq.Format("xml"))
	c.Assert(xerrors.Is(err, rpq.ErrUnknownFormat), gc.Equals, true)
}

func (s *LoadTestSuite) TestLoadFile(c *gc.C) {
	dir := c.MkDir()
	path := filepath.Join(dir, "carl4.yml")
	err := os.WriteFile(path, []byte("jobs:\n  - {r: 1, p: 2, q: 3}\n"), 0o644)
	c.Assert(err, gc.IsNil)

	inst, err := rpq.LoadFile(path)
	c.Assert(err, gc.IsNil)
	c.Assert(inst.Name, gc.Equals, "carl4")
	c.Assert(inst.Jobs, gc.DeepEquals, rpq.Jobs{{1, 2, 3}})

	_, err = rpq.LoadFile(filepath.Join(dir, "missing.txt"))
	c.Assert(err, gc.ErrorMatches, ".*чтение файла экземпляра.*")
}

func (s *LoadTestSuite) TestFormatFromPath(c *gc.C) {
	c.Assert(rpq.FormatFromPath("a/b.YAML"), gc.Equals, rpq.FormatYAML)
	c.Assert(rpq.FormatFromPath("b.json"), gc.Equals, rpq.FormatJSON)
	c.Assert(rpq.FormatFromPath("SCHRAGE1.DAT"), gc.Equals, rpq.FormatText)
}

func (s *LoadTestSuite) TestRandomInstance(c *gc.C) {
	b := rpq.DefaultBounds(25)
	inst := rpq.RandomInstance(25, b, rand.New(rand.NewSource(42)))
	c.Assert(inst.Len(), gc.Equals, 25)
	c.Assert(inst.Validate(), gc.IsNil)
	for _, j := range inst.Jobs {
		c.Assert(j.Release >= b.MinRelease && j.Release <= b.MaxRelease, gc.Equals, true)
		c.Assert(j.Duration >= b.MinDuration && j.Duration <= b.MaxDuration, gc.Equals, true)
		c.Assert(j.Tail >= b.MinTail && j.Tail <= b.MaxTail, gc.Equals, true)
	}

	again := rpq.RandomInstance(25, b, rand.New(rand.NewSource(42)))
	c.Assert(again.Jobs, gc.DeepEquals, inst.Jobs)

	c.Assert(func() { rpq.RandomInstance(3, b, nil) }, gc.PanicMatches, ".*nil.*")
}
