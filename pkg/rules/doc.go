// Package rules implements the shared textual rule-resource format used
// by the rule-driven encoders (Beider-Morse, Daitch-Mokotoff).
//
// A resource is newline-delimited text. Lines may be blank, single-line
// comments introduced by "//", or part of a multi-line block delimited
// by "/*" and "*/" (each delimiter alone at the start of its own line).
// The remaining lines carry one of four grammars: quadruplet rules,
// folding rules, language-guess rules, or bare list tokens. Callers pick
// the grammars valid for their resource kind; a meaningful line that
// matches none of them is a hard ParseError echoing the line verbatim.
package rules
