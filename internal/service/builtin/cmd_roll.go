package builtin

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/sandevgo/kord/internal/command"
	"github.com/sandevgo/kord/internal/core"
)

const (
	maxDiceCount = 100
	maxDiceSides = 1000
)

func registerRoll(scope *command.Scope) error {
	cmd, err := scope.Register("roll [dice]", "掷骰子，格式 NdM，默认 1d6", nil)
	if err != nil {
		return err
	}

	cmd.Action(func(ctx context.Context, args command.Args, bot core.Sender, s *core.Session) (string, error) {
		count, sides, err := parseDice(args.String("dice"))
		if err != nil {
			return err.Error(), nil
		}

		rolls := make([]string, count)
		total := 0
		for i := range rolls {
			v := rand.Intn(sides) + 1
			total += v
			rolls[i] = strconv.Itoa(v)
		}
		if count == 1 {
			return fmt.Sprintf("🎲 %s", rolls[0]), nil
		}
		return fmt.Sprintf("🎲 %s = %d", strings.Join(rolls, " + "), total), nil
	})
	return nil
}

func parseDice(spec string) (count, sides int, err error) {
	if spec == "" {
		return 1, 6, nil
	}

	parts := strings.SplitN(strings.ToLower(spec), "d", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("骰子格式应为 NdM，例如 2d6")
	}
	count, cerr := strconv.Atoi(parts[0])
	sides, serr := strconv.Atoi(parts[1])
	if cerr != nil || serr != nil || count < 1 || sides < 2 {
		return 0, 0, fmt.Errorf("骰子格式应为 NdM，例如 2d6")
	}
	if count > maxDiceCount || sides > maxDiceSides {
		return 0, 0, fmt.Errorf("骰子太多了，最多 %dd%d", maxDiceCount, maxDiceSides)
	}
	return count, sides, nil
}
