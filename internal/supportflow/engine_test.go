package supportflow

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultMenu())
}

func applyAll(e *Engine, s State, inputs ...string) (State, []Result) {
	results := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		r := e.Apply(s, in)
		results = append(results, r)
		s = r.State
	}
	return s, results
}

func TestGreetingListsCategoriesInOrder(t *testing.T) {
	e := newTestEngine()
	g := e.Greeting()

	assert.True(t, strings.HasPrefix(g, "Olá! Como posso ajudar hoje?"))
	idx := -1
	for i, name := range []string{"Erro no aplicativo", "Problema com oficina", "Pagamento", "Outros"} {
		pos := strings.Index(g, ordinal(i+1)+" "+name)
		require.Greater(t, pos, idx, "category %q out of order", name)
		idx = pos
	}
}

func TestMainMenuSelectsEachCategory(t *testing.T) {
	e := newTestEngine()
	keys := e.Menu().Keys()
	require.Equal(t, []string{"erro_app", "oficina", "pagamento", "outros"}, keys)

	for i, key := range keys {
		r := e.Apply(NewState(10), strconv.Itoa(i+1))

		assert.Equal(t, Submenu, r.State.Level)
		assert.Equal(t, key, r.State.PrimaryCategory)
		assert.Empty(t, r.Effects)
		require.Len(t, r.Replies, 1)

		c, _ := e.Menu().Category(key)
		prompt := r.Replies[0]
		assert.True(t, strings.HasPrefix(prompt, c.Title))
		last := -1
		for j, opt := range c.Options {
			pos := strings.Index(prompt, ordinal(j+1)+" "+opt.Label)
			require.Greater(t, pos, last, "option %q out of order", opt.Label)
			last = pos
		}
		assert.True(t, strings.HasSuffix(prompt, "(ou 0 para voltar)."))
	}
}

func TestInvalidInputLeavesStateUnchanged(t *testing.T) {
	e := newTestEngine()
	sub := intPtr(1)
	det := intPtr(2)

	states := []State{
		{Level: MainMenu, SessionID: 3},
		{Level: Submenu, PrimaryCategory: "oficina", SessionID: 3},
		{Level: DetailMenu, PrimaryCategory: "oficina", SubOptionIndex: sub, SessionID: 3},
	}
	inputs := []string{"abc", "5", "-1", "99", "2abc", "01", "+1", "1.0", "7"}

	for _, s := range states {
		for _, in := range inputs {
			if s.Level != MainMenu && in == "5" {
				continue
			}
			r := e.Apply(s, in)
			assert.True(t, s.Equal(r.State), "level %s input %q changed state", s.Level, in)
			assert.Empty(t, r.Effects, "level %s input %q produced effects", s.Level, in)
			assert.Len(t, r.Replies, 1)
		}
	}

	// blank input is ignored entirely
	s := State{Level: FreeTextContinue, PrimaryCategory: "oficina", SubOptionIndex: sub, DetailIndex: det}
	r := e.Apply(s, "   \t ")
	assert.True(t, s.Equal(r.State))
	assert.Empty(t, r.Replies)
	assert.Empty(t, r.Effects)
}

func TestMainMenuRangeMessage(t *testing.T) {
	r := newTestEngine().Apply(NewState(0), "5")

	assert.Equal(t, []string{"Selecione uma opção válida (1 a 4)."}, r.Replies)
}

func TestBackTransitions(t *testing.T) {
	e := newTestEngine()

	t.Run("main menu is a no-op", func(t *testing.T) {
		s := NewState(1)
		r := e.Apply(s, "0")
		assert.True(t, s.Equal(r.State))
		assert.Equal(t, []string{"Você já está no menu principal. Digite 1-4 para escolher uma categoria."}, r.Replies)
	})

	t.Run("submenu returns to main menu", func(t *testing.T) {
		r := e.Apply(State{Level: Submenu, PrimaryCategory: "oficina", SubOptionIndex: intPtr(2), SessionID: 9}, "0")
		assert.Equal(t, MainMenu, r.State.Level)
		assert.True(t, r.State.Equal(NewState(9)), "root state has no selection")
		assert.Equal(t, []string{e.Greeting()}, r.Replies)
	})

	t.Run("detail menu returns to submenu", func(t *testing.T) {
		r := e.Apply(State{Level: DetailMenu, PrimaryCategory: "oficina", SubOptionIndex: intPtr(1)}, "0")
		assert.Equal(t, Submenu, r.State.Level)
		assert.Equal(t, "oficina", r.State.PrimaryCategory)
		assert.Nil(t, r.State.DetailIndex)
		require.Len(t, r.Replies, 1)
		assert.Contains(t, r.Replies[0], "Sobre o problema com a oficina")
	})

	for _, level := range []Level{FreeTextFirst, FreeTextContinue} {
		t.Run(level.String()+" returns to detail menu", func(t *testing.T) {
			s := State{Level: level, PrimaryCategory: "pagamento", SubOptionIndex: intPtr(0), DetailIndex: intPtr(2)}
			r := e.Apply(s, "0")
			assert.Equal(t, DetailMenu, r.State.Level)
			assert.Equal(t, intPtr(0), r.State.SubOptionIndex)
			assert.Nil(t, r.State.DetailIndex)
			require.Len(t, r.Replies, 1)
			assert.Contains(t, r.Replies[0], `"Não consegui efetuar o pagamento"`)
			assert.Empty(t, r.Effects)
		})
	}
}

func TestBackNeverSkipsALevel(t *testing.T) {
	e := newTestEngine()
	s, _ := applyAll(e, NewState(1), "2", "3", "1", "texto")
	require.Equal(t, FreeTextContinue, s.Level)

	expected := []Level{DetailMenu, Submenu, MainMenu, MainMenu}
	for _, want := range expected {
		s = e.Apply(s, "0").State
		assert.Equal(t, want, s.Level)
	}
}

func TestScenarioBackAndForth(t *testing.T) {
	e := newTestEngine()

	s, _ := applyAll(e, NewState(0), "1", "0", "3", "2", "0")

	assert.Equal(t, Submenu, s.Level)
	assert.Equal(t, "pagamento", s.PrimaryCategory)
	assert.Nil(t, s.DetailIndex)
}

func TestDetailOutOfRange(t *testing.T) {
	e := newTestEngine()
	s, _ := applyAll(e, NewState(0), "1", "1")
	require.Equal(t, DetailMenu, s.Level)

	r := e.Apply(s, "99")

	require.Len(t, r.Replies, 1)
	assert.Contains(t, r.Replies[0], "1 a 5")
	assert.Nil(t, r.State.DetailIndex)
	assert.Equal(t, DetailMenu, r.State.Level)
}

func TestDetailOutOfRangeAfterBack(t *testing.T) {
	e := newTestEngine()
	s, _ := applyAll(e, NewState(0), "1", "1", "3", "0")
	require.Equal(t, DetailMenu, s.Level)
	require.Nil(t, s.DetailIndex)

	r := e.Apply(s, "99")

	assert.Contains(t, r.Replies[0], "1 a 5")
	assert.Nil(t, r.State.DetailIndex)
}

func TestSelectionEffects(t *testing.T) {
	e := newTestEngine()

	s, results := applyAll(e, NewState(55), "1", "2", "3", "O app trava ao abrir o perfil")

	assert.Equal(t, []Effect{{Kind: PostMessage, SessionID: 55, Text: "Escolha categoria: O app está lento"}}, results[1].Effects)
	assert.Equal(t, []Effect{{Kind: PostMessage, SessionID: 55, Text: "Detalhe: Travamentos intermitentes"}}, results[2].Effects)
	assert.Equal(t, []Effect{{Kind: PostMessage, SessionID: 55, Text: "O app trava ao abrir o perfil"}}, results[3].Effects)
	assert.Contains(t, results[2].Replies[0], "descreva com detalhes")
	assert.Contains(t, results[3].Replies[0], "Recebemos sua descrição")

	assert.Equal(t, FreeTextContinue, s.Level)
	assert.Equal(t, "erro_app", s.PrimaryCategory)
	assert.Equal(t, 1, *s.SubOptionIndex)
	assert.Equal(t, 2, *s.DetailIndex)
}

func TestContinueIsIdempotent(t *testing.T) {
	e := newTestEngine()
	s, _ := applyAll(e, NewState(9), "4", "1", "1", "descrição")

	for i := 0; i < 3; i++ {
		r := e.Apply(s, "2")
		assert.True(t, s.Equal(r.State))
		assert.Empty(t, r.Effects)
		assert.Contains(t, r.Replies[0], "Pode continuar explicando")
		s = r.State
	}
}

func TestAdditionalDescriptionStaysInContinue(t *testing.T) {
	e := newTestEngine()
	s, _ := applyAll(e, NewState(9), "4", "1", "1", "descrição")

	r := e.Apply(s, "mais um detalhe")

	assert.True(t, s.Equal(r.State))
	assert.Equal(t, []Effect{{Kind: PostMessage, SessionID: 9, Text: "mais um detalhe"}}, r.Effects)
	assert.Contains(t, r.Replies[0], "Informação adicionada")
}

func TestRoundTripFinalizesOnce(t *testing.T) {
	e := newTestEngine()
	s, _ := applyAll(e, NewState(77), "2", "1", "4", "A oficina leu e não respondeu")

	r := e.Apply(s, "1")
	require.Len(t, r.Effects, 1)
	assert.Equal(t, Effect{Kind: FinalizeSession, SessionID: 77}, r.Effects[0])
	assert.Equal(t, Stay, r.Navigate)
	assert.True(t, s.Equal(r.State), "state waits for the finalize outcome")

	done := e.FinalizeOutcome(r.State, nil)
	assert.Equal(t, NavigateHome, done.Navigate)
	assert.Equal(t, []string{ClosingMessage}, done.Replies)
	assert.Empty(t, done.Effects)
}

func TestFinalizeFailureStaysInContinue(t *testing.T) {
	e := newTestEngine()
	s, _ := applyAll(e, NewState(77), "2", "1", "4", "descrição")
	r := e.Apply(s, "1")

	failed := e.FinalizeOutcome(r.State, errors.New("connection refused"))

	assert.Equal(t, FreeTextContinue, failed.State.Level)
	assert.Equal(t, Stay, failed.Navigate)
	assert.Empty(t, failed.Replies)
	require.Len(t, failed.Notices, 1)
	assert.True(t, failed.Notices[0].Blocking)
	assert.Equal(t, FinalizeFailedMessage, failed.Notices[0].Text)
}

func TestDefensiveResetOnUnknownCategory(t *testing.T) {
	e := newTestEngine()

	for _, s := range []State{
		{Level: Submenu, PrimaryCategory: "removida", SessionID: 4},
		{Level: DetailMenu, PrimaryCategory: "removida", SubOptionIndex: intPtr(0), SessionID: 4},
		{Level: DetailMenu, PrimaryCategory: "oficina", SubOptionIndex: intPtr(42), SessionID: 4},
	} {
		r := e.Apply(s, "1")

		assert.Equal(t, NewState(4), r.State)
		assert.Equal(t, []string{InternalErrorMessage, e.Greeting()}, r.Replies)
		assert.Empty(t, r.Effects)
	}
}

func TestApplyDoesNotAliasInputState(t *testing.T) {
	e := newTestEngine()
	s := State{Level: DetailMenu, PrimaryCategory: "oficina", SubOptionIndex: intPtr(0)}

	r := e.Apply(s, "1")
	*r.State.SubOptionIndex = 5

	assert.Equal(t, 0, *s.SubOptionIndex)
}
