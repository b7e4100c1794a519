package rpq

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Format - формат файла экземпляра.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath определяет формат по расширению файла.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// LoadFile читает экземпляр из файла; формат выбирается по расширению.
func LoadFile(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("чтение файла экземпляра: %w", err)
	}
	inst, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", path, err)
	}
	if inst.Name == "" {
		inst.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return inst, nil
}

// Parse разбирает экземпляр в заданном формате и проверяет его.
func Parse(data []byte, format Format) (*Instance, error) {
	var (
		inst *Instance
		err  error
	)
	switch format {
	case FormatYAML:
		inst, err = parseYAML(data)
	case FormatJSON:
		inst, err = parseJSON(data)
	case FormatText:
		inst, err = parseText(data)
	default:
		return nil, xerrors.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

func parseYAML(data []byte) (*Instance, error) {
	var inst Instance
	if err := yaml.Unmarshal(data, &inst); err != nil {
		return nil, xerrors.Errorf("разбор YAML: %w", err)
	}
	return &inst, nil
}

// parseJSON принимает {"name": ..., "jobs": [...]}, где работа задаётся
// объектом {"r":..,"p":..,"q":..} или массивом [r, p, q].
func parseJSON(data []byte) (*Instance, error) {
	if !gjson.ValidBytes(data) {
		return nil, xerrors.New("разбор JSON: некорректный документ")
	}
	doc := gjson.ParseBytes(data)
	inst := &Instance{Name: doc.Get("name").String()}

	for i, value := range doc.Get("jobs").Array() {
		var fields []gjson.Result
		switch {
		case value.IsArray():
			fields = value.Array()
			if len(fields) != 3 {
				return nil, xerrors.Errorf("разбор JSON: работа %d: ожидалось 3 значения (получено %d)", i, len(fields))
			}
		case value.IsObject():
			fields = []gjson.Result{value.Get("r"), value.Get("p"), value.Get("q")}
		default:
			return nil, xerrors.Errorf("разбор JSON: работа %d: неожиданный тип %s", i, value.Type)
		}

		var vals [3]int
		for k, f := range fields {
			v, err := jsonInt(f)
			if err != nil {
				return nil, xerrors.Errorf("разбор JSON: работа %d, поле %s: %w", i, jobKeys[k], err)
			}
			vals[k] = v
		}
		inst.Jobs = append(inst.Jobs, Job{Release: vals[0], Duration: vals[1], Tail: vals[2]})
	}
	return inst, nil
}

var jobKeys = [3]string{"r", "p", "q"}

// jsonInt принимает только присутствующее целое число.
func jsonInt(v gjson.Result) (int, error) {
	if !v.Exists() {
		return 0, xerrors.Errorf("поле отсутствует: %w", ErrBadValue)
	}
	if v.Type != gjson.Number {
		return 0, xerrors.Errorf("%s %s: %w", v.Type, v.Raw, ErrBadValue)
	}
	if v.Num != math.Trunc(v.Num) || math.Abs(v.Num) > 1<<53 {
		return 0, xerrors.Errorf("%s: %w", v.Raw, ErrBadValue)
	}
	return int(v.Num), nil
}

// parseText разбирает классический формат: n, затем n строк "r p q".
func parseText(data []byte) (*Instance, error) {
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return nil, ErrEmptyInput
	}
	nums := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, xerrors.Errorf("разбор текста: значение %q: %w", f, err)
		}
		nums[i] = v
	}
	n := nums[0]
	if n <= 0 {
		return nil, ErrEmptyInput
	}
	if len(nums)-1 != 3*n {
		return nil, xerrors.Errorf("разбор текста: ожидалось %d значений (получено %d)", 3*n, len(nums)-1)
	}
	inst := &Instance{Jobs: make(Jobs, n)}
	for i := 0; i < n; i++ {
		k := 1 + 3*i
		inst.Jobs[i] = Job{Release: nums[k], Duration: nums[k+1], Tail: nums[k+2]}
	}
	return inst, nil
}
