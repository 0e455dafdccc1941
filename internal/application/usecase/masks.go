package usecase

import "strings"

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCPF aplica la máscara 000.000.000-00 sobre los dígitos de s (máx. 11).
// Con menos dígitos devuelve la máscara parcial.
func FormatCPF(s string) string {
	d := digitsOnly(s)
	if len(d) > 11 {
		d = d[:11]
	}
	var b strings.Builder
	for i, r := range d {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatDocument aplica máscara de CPF o, con más de 11 dígitos, de CNPJ (00.000.000/0000-00).
func FormatDocument(s string) string {
	d := digitsOnly(s)
	if len(d) <= 11 {
		return FormatCPF(d)
	}
	if len(d) > 14 {
		d = d[:14]
	}
	var b strings.Builder
	for i, r := range d {
		switch i {
		case 2, 5:
			b.WriteByte('.')
		case 8:
			b.WriteByte('/')
		case 12:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatPhone aplica la máscara (00) 00000-0000.
func FormatPhone(s string) string {
	d := digitsOnly(s)
	if len(d) > 11 {
		d = d[:11]
	}
	if len(d) <= 2 {
		return d
	}
	rest := d[2:]
	if len(rest) > 5 {
		rest = rest[:5] + "-" + rest[5:]
	}
	return "(" + d[:2] + ") " + rest
}
