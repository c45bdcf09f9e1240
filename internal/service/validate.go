package service

import (
	"net/mail"
	"net/url"
	"unicode/utf8"
)

// Field limits mirror the public API contract: display strings are
// 2 to 30 characters, links must be absolute http(s) URLs.
const (
	minFieldLen = 2
	maxFieldLen = 30
)

func validFieldLen(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= minFieldLen && n <= maxFieldLen
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func validHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
