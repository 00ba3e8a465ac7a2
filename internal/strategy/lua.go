package strategy

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"squink-splash/internal/game"
)

// Lua runs a user-supplied script as a strategy. The script must
// define a global function
//
//	function decide(state)
//	    return x, y   -- cell to paint, or nil for no move
//	end
//
// where state is a table with width, height, phase, rounds_played,
// rounds_remaining, me = {id, x, y, score} and cells, a row table of
// column tables holding owner strings ("" = unclaimed, 1-based
// indices). Returning nil means the player has no move left.
//
// A Lua strategy owns one interpreter state and is not safe for
// concurrent use; each driver gets its own instance. Call Close when
// done.
type Lua struct {
	name string
	ls   *lua.LState
}

// NewLuaScript compiles and runs the script source, keeping the
// resulting interpreter state for Decide calls.
func NewLuaScript(name, src string) (*Lua, error) {
	ls := lua.NewState()
	if err := ls.DoString(src); err != nil {
		ls.Close()
		return nil, fmt.Errorf("loading lua strategy %s: %w", name, err)
	}
	if _, ok := ls.GetGlobal("decide").(*lua.LFunction); !ok {
		ls.Close()
		return nil, fmt.Errorf("lua strategy %s does not define decide()", name)
	}
	return &Lua{name: name, ls: ls}, nil
}

// NewLuaFile loads the script at path.
func NewLuaFile(name, path string) (*Lua, error) {
	ls := lua.NewState()
	if err := ls.DoFile(path); err != nil {
		ls.Close()
		return nil, fmt.Errorf("loading lua strategy %s: %w", name, err)
	}
	if _, ok := ls.GetGlobal("decide").(*lua.LFunction); !ok {
		ls.Close()
		return nil, fmt.Errorf("lua strategy %s does not define decide()", name)
	}
	return &Lua{name: name, ls: ls}, nil
}

func (l *Lua) Name() string { return l.name }

func (l *Lua) Close() { l.ls.Close() }

func (l *Lua) Decide(s *game.Snapshot, playerID string) (game.Coord, error) {
	state := l.stateTable(s, playerID)
	if err := l.ls.CallByParam(lua.P{
		Fn:      l.ls.GetGlobal("decide"),
		NRet:    2,
		Protect: true,
	}, state); err != nil {
		return game.Coord{}, fmt.Errorf("lua strategy %s: %w", l.name, err)
	}
	xv := l.ls.Get(-2)
	yv := l.ls.Get(-1)
	l.ls.Pop(2)

	if xv == lua.LNil {
		return game.Coord{}, ErrNoLegalMove
	}
	x, xok := xv.(lua.LNumber)
	y, yok := yv.(lua.LNumber)
	if !xok || !yok {
		return game.Coord{}, fmt.Errorf("lua strategy %s: decide() must return two numbers or nil", l.name)
	}
	return game.Coord{X: int(x), Y: int(y)}, nil
}

func (l *Lua) stateTable(s *game.Snapshot, playerID string) *lua.LTable {
	t := l.ls.NewTable()
	t.RawSetString("width", lua.LNumber(s.Width))
	t.RawSetString("height", lua.LNumber(s.Height))
	t.RawSetString("phase", lua.LString(s.Phase))
	t.RawSetString("rounds_played", lua.LNumber(s.RoundsPlayed))
	t.RawSetString("rounds_remaining", lua.LNumber(s.RoundsRemaining))

	if p, ok := s.Player(playerID); ok {
		me := l.ls.NewTable()
		me.RawSetString("id", lua.LString(p.ID))
		me.RawSetString("x", lua.LNumber(p.Pos.X))
		me.RawSetString("y", lua.LNumber(p.Pos.Y))
		me.RawSetString("score", lua.LNumber(p.Score))
		t.RawSetString("me", me)
	}

	cells := l.ls.NewTable()
	for y, row := range s.Cells {
		lrow := l.ls.NewTable()
		for x, c := range row {
			lrow.RawSetInt(x+1, lua.LString(c.Owner))
		}
		cells.RawSetInt(y+1, lrow)
	}
	t.RawSetString("cells", cells)
	return t
}
