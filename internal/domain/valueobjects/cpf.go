package valueobjects

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCPF = errors.New("invalid cpf")
)

// CPF é um value object para o documento brasileiro, armazenado só com dígitos
type CPF struct {
	value string
}

// NewCPF cria um novo CPF validado, aceitando os formatos
// "000.000.000-00" e "00000000000"
func NewCPF(cpf string) (CPF, error) {
	digits := stripCPF(cpf)

	if !isValidCPF(digits) {
		return CPF{}, ErrInvalidCPF
	}

	return CPF{value: digits}, nil
}

// String retorna o CPF sem formatação (11 dígitos)
func (c CPF) String() string {
	return c.value
}

// Formatted retorna o CPF no formato 000.000.000-00
func (c CPF) Formatted() string {
	if len(c.value) != 11 {
		return c.value
	}
	return c.value[0:3] + "." + c.value[3:6] + "." + c.value[6:9] + "-" + c.value[9:11]
}

// stripCPF remove pontuação, mantendo apenas dígitos
func stripCPF(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isValidCPF valida os dois dígitos verificadores do CPF
func isValidCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}

	// CPFs com todos os dígitos iguais passam no cálculo mas são inválidos
	allEqual := true
	for i := 1; i < 11; i++ {
		if cpf[i] != cpf[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	return checkDigit(cpf, 9) && checkDigit(cpf, 10)
}

// checkDigit valida o dígito verificador na posição pos (9 ou 10)
func checkDigit(cpf string, pos int) bool {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += int(cpf[i]-'0') * (pos + 1 - i)
	}

	rest := (sum * 10) % 11
	if rest == 10 {
		rest = 0
	}

	return rest == int(cpf[pos]-'0')
}
