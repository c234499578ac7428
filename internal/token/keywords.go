package token

var keywords = map[string]Kind{
	"const":     KwConst,
	"let":       KwLet,
	"var":       KwVar,
	"function":  KwFunction,
	"return":    KwReturn,
	"new":       KwNew,
	"export":    KwExport,
	"default":   KwDefault,
	"import":    KwImport,
	"from":      KwFrom,
	"async":     KwAsync,
	"await":     KwAwait,
	"if":        KwIf,
	"else":      KwElse,
	"for":       KwFor,
	"while":     KwWhile,
	"typeof":    KwTypeof,
	"this":      KwThis,
	"true":      KwTrue,
	"false":     KwFalse,
	"null":      KwNull,
	"undefined": KwUndefined,
}

// LookupKeyword returns the keyword kind for text, or Ident if it is not a
// keyword of the config dialect. Words like 'class' or 'switch' fall back to
// Ident: the parser tolerates them as plain expressions rather than
// rejecting the file.
func LookupKeyword(text string) Kind {
	if k, ok := keywords[text]; ok {
		return k
	}
	return Ident
}
