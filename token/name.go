package token

// String returns the canonical upper-case name for this token kind,
// as used by the CLI dump format and test failure output.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "INVALID"
	case EOF:
		return "EOF"
	case Ampersand:
		return "AMPERSAND"
	case AmpersandAmpersand:
		return "AMPERSAND_AMPERSAND"
	case AmpersandAmpersandEqual:
		return "AMPERSAND_AMPERSAND_EQUAL"
	case AmpersandEqual:
		return "AMPERSAND_EQUAL"
	case Backtick:
		return "BACKTICK"
	case Bang:
		return "BANG"
	case BangAt:
		return "BANG_AT"
	case BangEqual:
		return "BANG_EQUAL"
	case BangTilde:
		return "BANG_TILDE"
	case BraceLeft:
		return "BRACE_LEFT"
	case BraceRight:
		return "BRACE_RIGHT"
	case BracketLeft:
		return "BRACKET_LEFT"
	case BracketLeftRight:
		return "BRACKET_LEFT_RIGHT"
	case BracketRight:
		return "BRACKET_RIGHT"
	case Caret:
		return "CARET"
	case CaretEqual:
		return "CARET_EQUAL"
	case Colon:
		return "COLON"
	case ColonColon:
		return "COLON_COLON"
	case Comma:
		return "COMMA"
	case Dot:
		return "DOT"
	case DotDot:
		return "DOT_DOT"
	case DotDotDot:
		return "DOT_DOT_DOT"
	case Equal:
		return "EQUAL"
	case EqualEqual:
		return "EQUAL_EQUAL"
	case EqualEqualEqual:
		return "EQUAL_EQUAL_EQUAL"
	case EqualGreater:
		return "EQUAL_GREATER"
	case EqualTilde:
		return "EQUAL_TILDE"
	case Greater:
		return "GREATER"
	case GreaterEqual:
		return "GREATER_EQUAL"
	case GreaterGreater:
		return "GREATER_GREATER"
	case GreaterGreaterEqual:
		return "GREATER_GREATER_EQUAL"
	case LambdaBegin:
		return "LAMBDA_BEGIN"
	case Less:
		return "LESS"
	case LessEqual:
		return "LESS_EQUAL"
	case LessEqualGreater:
		return "LESS_EQUAL_GREATER"
	case LessLess:
		return "LESS_LESS"
	case LessLessEqual:
		return "LESS_LESS_EQUAL"
	case Minus:
		return "MINUS"
	case MinusAt:
		return "MINUS_AT"
	case MinusEqual:
		return "MINUS_EQUAL"
	case MinusGreater:
		return "MINUS_GREATER"
	case Newline:
		return "NEWLINE"
	case ParenthesisLeft:
		return "PARENTHESIS_LEFT"
	case ParenthesisRight:
		return "PARENTHESIS_RIGHT"
	case Percent:
		return "PERCENT"
	case PercentEqual:
		return "PERCENT_EQUAL"
	case Pipe:
		return "PIPE"
	case PipeEqual:
		return "PIPE_EQUAL"
	case PipePipe:
		return "PIPE_PIPE"
	case PipePipeEqual:
		return "PIPE_PIPE_EQUAL"
	case Plus:
		return "PLUS"
	case PlusAt:
		return "PLUS_AT"
	case PlusEqual:
		return "PLUS_EQUAL"
	case QuestionMark:
		return "QUESTION_MARK"
	case Semicolon:
		return "SEMICOLON"
	case Slash:
		return "SLASH"
	case SlashEqual:
		return "SLASH_EQUAL"
	case Star:
		return "STAR"
	case StarEqual:
		return "STAR_EQUAL"
	case StarStar:
		return "STAR_STAR"
	case StarStarEqual:
		return "STAR_STAR_EQUAL"
	case Tilde:
		return "TILDE"
	case TildeAt:
		return "TILDE_AT"
	case BackReference:
		return "BACK_REFERENCE"
	case CharacterLiteral:
		return "CHARACTER_LITERAL"
	case ClassVariable:
		return "CLASS_VARIABLE"
	case Comment:
		return "COMMENT"
	case Constant:
		return "CONSTANT"
	case EmbDocBegin:
		return "EMBDOC_BEGIN"
	case EmbDocEnd:
		return "EMBDOC_END"
	case EmbDocLine:
		return "EMBDOC_LINE"
	case EmbExprBegin:
		return "EMBEXPR_BEGIN"
	case EmbExprEnd:
		return "EMBEXPR_END"
	case Float:
		return "FLOAT"
	case GlobalVariable:
		return "GLOBAL_VARIABLE"
	case Identifier:
		return "IDENTIFIER"
	case ImaginaryNumber:
		return "IMAGINARY_NUMBER"
	case InstanceVariable:
		return "INSTANCE_VARIABLE"
	case Integer:
		return "INTEGER"
	case Label:
		return "LABEL"
	case NthReference:
		return "NTH_REFERENCE"
	case RationalNumber:
		return "RATIONAL_NUMBER"
	case RegexpBegin:
		return "REGEXP_BEGIN"
	case RegexpEnd:
		return "REGEXP_END"
	case StringBegin:
		return "STRING_BEGIN"
	case StringContent:
		return "STRING_CONTENT"
	case StringEnd:
		return "STRING_END"
	case SymbolBegin:
		return "SYMBOL_BEGIN"
	case WordsSep:
		return "WORDS_SEP"
	case PercentLowerI:
		return "PERCENT_LOWER_I"
	case PercentLowerW:
		return "PERCENT_LOWER_W"
	case PercentLowerX:
		return "PERCENT_LOWER_X"
	case PercentUpperI:
		return "PERCENT_UPPER_I"
	case PercentUpperW:
		return "PERCENT_UPPER_W"
	case KeywordEncoding:
		return "KEYWORD___ENCODING__"
	case KeywordFile:
		return "KEYWORD___FILE__"
	case KeywordLine:
		return "KEYWORD___LINE__"
	case KeywordAlias:
		return "KEYWORD_ALIAS"
	case KeywordAnd:
		return "KEYWORD_AND"
	case KeywordBegin:
		return "KEYWORD_BEGIN"
	case KeywordBeginUpcase:
		return "KEYWORD_BEGIN_UPCASE"
	case KeywordBreak:
		return "KEYWORD_BREAK"
	case KeywordCase:
		return "KEYWORD_CASE"
	case KeywordClass:
		return "KEYWORD_CLASS"
	case KeywordDef:
		return "KEYWORD_DEF"
	case KeywordDefined:
		return "KEYWORD_DEFINED"
	case KeywordDo:
		return "KEYWORD_DO"
	case KeywordElse:
		return "KEYWORD_ELSE"
	case KeywordElsif:
		return "KEYWORD_ELSIF"
	case KeywordEnd:
		return "KEYWORD_END"
	case KeywordEndUpcase:
		return "KEYWORD_END_UPCASE"
	case KeywordEnsure:
		return "KEYWORD_ENSURE"
	case KeywordFalse:
		return "KEYWORD_FALSE"
	case KeywordFor:
		return "KEYWORD_FOR"
	case KeywordIf:
		return "KEYWORD_IF"
	case KeywordIn:
		return "KEYWORD_IN"
	case KeywordModule:
		return "KEYWORD_MODULE"
	case KeywordNext:
		return "KEYWORD_NEXT"
	case KeywordNil:
		return "KEYWORD_NIL"
	case KeywordNot:
		return "KEYWORD_NOT"
	case KeywordOr:
		return "KEYWORD_OR"
	case KeywordRedo:
		return "KEYWORD_REDO"
	case KeywordRescue:
		return "KEYWORD_RESCUE"
	case KeywordRetry:
		return "KEYWORD_RETRY"
	case KeywordReturn:
		return "KEYWORD_RETURN"
	case KeywordSelf:
		return "KEYWORD_SELF"
	case KeywordSuper:
		return "KEYWORD_SUPER"
	case KeywordThen:
		return "KEYWORD_THEN"
	case KeywordTrue:
		return "KEYWORD_TRUE"
	case KeywordUndef:
		return "KEYWORD_UNDEF"
	case KeywordUnless:
		return "KEYWORD_UNLESS"
	case KeywordUntil:
		return "KEYWORD_UNTIL"
	case KeywordWhen:
		return "KEYWORD_WHEN"
	case KeywordWhile:
		return "KEYWORD_WHILE"
	case KeywordYield:
		return "KEYWORD_YIELD"
	default:
		return "UNKNOWN"
	}
}
