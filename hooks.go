package i18n

// Hook observes Translate calls. BeforeTranslate may rewrite the inputs on
// the context; AfterTranslate may rewrite Result and Err.
type Hook interface {
	BeforeTranslate(ctx *HookContext)
	AfterTranslate(ctx *HookContext)
}

// HookContext carries a single Translate call through the registered hooks.
// ResolvedLocale is populated after resolution: the locale the winning entry
// (or the failure) was attributed to.
type HookContext struct {
	Locales        []string
	Key            string
	Options        Options
	ResolvedLocale string
	Result         string
	Err            error
}

// HookFuncs adapts bare functions to the Hook interface. Either field may be
// nil.
type HookFuncs struct {
	Before func(ctx *HookContext)
	After  func(ctx *HookContext)
}

func (h HookFuncs) BeforeTranslate(ctx *HookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h HookFuncs) AfterTranslate(ctx *HookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}
