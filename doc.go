/*
Package lucq splits Lucene-style query strings into tokens and puts them back
together.

# Overview

Deparse turns a query string into an ordered list of tokens. Operators and
parentheses become literal tokens, everything else becomes a term token that
carries its field, if it has one, separately from the term text:

	tokens := lucq.Deparse(`author: Meier tags:(water OR fire) "open access"`)

	// Term(author, "Meier")
	// Term(tags, "( water OR fire )")
	// Term(<global>, "\"open access\"")

The caller may edit the field or value of any term and then call Assemble to
get a query string back:

	tokens[0].Value = "(Meier OR Mueller -Donald)"
	q := lucq.Assemble(tokens)

	// author : (Meier OR Mueller -Donald) tags : ( water OR fire ) "open access"

Whitespace, colons and parentheses inside quoted strings, {…} and […] ranges
and /…/ regular expressions never split a term. Escaped colons (\:) do not
separate a field from its term.

# Guarantees

Assemble(Deparse(q)) is not always identical to q, since the spacing around
colons and parentheses is normalized, but deparsing it again yields the same
tokens. Deparse never fails: unbalanced parentheses and unterminated quotes
or ranges produce a best-effort tokenization. Validate, or a Parser created
with WithStrict, reports those problems without changing the tokens.

Assemble does no escaping. A value that contains whitespace, colons or
parentheses outside of quotes or ranges has to be escaped by the caller
before the assembled query is deparsed again.

# Grammar

Only the structure needed to find terms is recognized. The operator tokens
are AND, OR, NOT, !, &&, || and the parentheses, matched exactly and case
sensitively. Fuzzy, proximity, boost and wildcard syntax is kept as part of
the term text.
*/
package lucq
