package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"supertrunfo/internal/config"
	"supertrunfo/internal/input"
	"supertrunfo/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func cardLines(state, code, city, population string) []string {
	return []string{state, code, city, population, "250.5", "12.75", "8"}
}

func session(cards ...[]string) string {
	var lines []string
	for _, c := range cards {
		lines = append(lines, c...)
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestRunText(t *testing.T) {
	in := session(
		cardLines("a", "a01", "Campinas", "100"),
		cardLines("B", "B04", "Curitiba", "200"),
	)
	var out, errOut bytes.Buffer

	err := run(strings.NewReader(in), &out, &errOut, &config.Config{LogLevel: "warn", Format: "text"}, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, errOut.String())

	text := out.String()
	assert.Contains(t, text, "=== Cadastro da Carta 1 ===")
	assert.Contains(t, text, "Numero de Pontos Turisticos: \n=== Cadastro da Carta 2 ===")
	assert.Contains(t, text, "Carta 1:\nEstado: A\nCodigo: A01\nNome da Cidade: Campinas\nPopulacao: 100\n")
	assert.Contains(t, text, "Carta 2:\nEstado: B\nCodigo: B04\nNome da Cidade: Curitiba\nPopulacao: 200\n")

	i := strings.Index(text, "Comparacao de Cartas:\n\n")
	require.NotEqual(t, -1, i)
	assert.Equal(t, strings.Join([]string{
		"Populacao: Carta 2 venceu (0)",
		"Area: Carta 2 venceu (0)",
		"PIB: Carta 2 venceu (0)",
		"Pontos Turisticos: Carta 2 venceu (0)",
		"Densidade Populacional: Carta 1 venceu (1)",
		"PIB per Capita: Carta 1 venceu (1)",
		// per capita outweighs the extra 100 inhabitants
		"Super Poder: Carta 1 venceu (1)",
	}, "\n")+"\n", text[i+len("Comparacao de Cartas:\n\n"):])
}

func TestRunEndOfInput(t *testing.T) {
	in := session(cardLines("C", "C02", "Natal", "10"), []string{"D", "D01"})
	var out bytes.Buffer

	err := run(strings.NewReader(in), &out, &out, &config.Config{LogLevel: "warn", Format: "text"}, zap.NewNop())
	assert.ErrorIs(t, err, input.ErrEndOfInput)
	assert.True(t, strings.HasSuffix(out.String(), "\nEntrada encerrada (EOF). Finalizando.\n"))
	assert.NotContains(t, out.String(), "Comparacao de Cartas")
}

func TestRunJSONKeepsPromptsOffStdout(t *testing.T) {
	in := session(
		cardLines("E", "E01", "Belem", "300"),
		cardLines("F", "F02", "Manaus", "300"),
	)
	var out, errOut bytes.Buffer

	err := run(strings.NewReader(in), &out, &errOut, &config.Config{LogLevel: "warn", Format: "json"}, zap.NewNop())
	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "Estado (A a H): ")

	var msg report.Message
	require.NoError(t, json.Unmarshal(out.Bytes(), &msg))
	assert.Equal(t, report.MessageMatchResult, msg.Type)
}

func TestRunJSONWithHugePIB(t *testing.T) {
	in := session(
		[]string{"A", "A01", "X", "1", "1", "1e300", "1"},
		cardLines("B", "B01", "Y", "10"),
	)
	var out, errOut bytes.Buffer

	err := run(strings.NewReader(in), &out, &errOut, &config.Config{LogLevel: "warn", Format: "json"}, zap.NewNop())
	require.NoError(t, err)

	var msg report.Message
	require.NoError(t, json.Unmarshal(out.Bytes(), &msg))
	var doc report.Document
	require.NoError(t, json.Unmarshal(msg.Payload, &doc))
	require.Len(t, doc.Cards, 2)
	require.Len(t, doc.Outcomes, 7)
	assert.Contains(t, string(msg.Payload), `"output_per_capita": "+Inf"`)
}

func TestRootCmd(t *testing.T) {
	t.Setenv("SUPERTRUNFO_FORMAT", "text")

	t.Run("yaml flag overrides env", func(t *testing.T) {
		in := session(
			cardLines("g", "g03", "Goiania", "1000"),
			cardLines("h", "h02", "Palmas", "2000"),
		)
		var out, errOut bytes.Buffer
		cmd := newRootCmd()
		cmd.SetIn(strings.NewReader(in))
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		cmd.SetArgs([]string{"--format", "yaml", "--log-level", "error"})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "code: G03")
		assert.Contains(t, out.String(), "code: H02")
		assert.NotContains(t, out.String(), "Estado (A a H)")
	})

	t.Run("invalid flag value", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetIn(strings.NewReader(""))
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--format", "xml"})
		assert.Error(t, cmd.Execute())
	})

	t.Run("no positional arguments", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"extra"})
		assert.Error(t, cmd.Execute())
	})
}
