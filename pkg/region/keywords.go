package region

// reservedWords is the fixed set of Java language keywords. A package
// identifier is rejected when any dot-delimited segment equals one of these,
// e.g. "org.apache.commons.lang.enum". The set is never mutated at runtime.
var reservedWords = map[string]struct{}{
	"abstract": {}, "assert": {}, "boolean": {}, "break": {},
	"byte": {}, "case": {}, "catch": {}, "char": {},
	"class": {}, "continue": {}, "default": {}, "do": {},
	"double": {}, "else": {}, "enum": {}, "extends": {},
	"final": {}, "finally": {}, "float": {}, "for": {},
	"if": {}, "implements": {}, "import": {}, "instanceof": {},
	"int": {}, "interface": {}, "long": {}, "native": {},
	"new": {}, "package": {}, "private": {}, "protected": {},
	"public": {}, "return": {}, "short": {}, "static": {},
	"strictfp": {}, "super": {}, "switch": {}, "synchronized": {},
	"this": {}, "throw": {}, "throws": {}, "transient": {},
	"try": {}, "void": {}, "volatile": {}, "while": {},
}
