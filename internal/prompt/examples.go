package prompt

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/dmorgan81/imagegen/internal/log"
	"github.com/samber/do"
	"github.com/samber/lo"
)

var Defaults = []string{
	"A serene landscape with mountains at sunset",
	"A futuristic city with flying cars",
	"A magical forest with glowing mushrooms",
}

// Examples are ready-made prompts the user can pick instead of typing.
type Examples struct {
	prompts []string
	rnd     *rand.Rand
}

func NewExamples(i *do.Injector) (*Examples, error) {
	return New(do.MustInvokeNamed[[]string](i, "prompts")), nil
}

// New keeps the non-blank prompts, in order and without duplicates, falling
// back to Defaults when none are left.
func New(prompts []string) *Examples {
	prompts = lo.Uniq(lo.Filter(prompts, func(p string, _ int) bool {
		return strings.TrimSpace(p) != ""
	}))
	if len(prompts) == 0 {
		prompts = Defaults
	}
	return &Examples{prompts, rand.New(rand.NewSource(time.Now().UTC().UnixNano()))}
}

func (e *Examples) All() []string {
	return append([]string(nil), e.prompts...)
}

// At returns the idx-th example, if there is one.
func (e *Examples) At(idx int) (string, bool) {
	if idx < 0 || idx >= len(e.prompts) {
		return "", false
	}
	return e.prompts[idx], true
}

func (e *Examples) Random(ctx context.Context) string {
	log := log.FromContextOrDiscard(ctx).WithGroup("examples")
	idx := e.rnd.Intn(len(e.prompts))
	log.Debug("picked random example", "index", idx)
	return e.prompts[idx]
}
