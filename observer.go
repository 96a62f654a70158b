package i18n

// Observer receives switch lifecycle notifications: the committed locale
// after every settled switch and each loading flag transition. Callbacks run
// on the goroutine driving the switch and should not block.
type Observer interface {
	LocaleChanged(locale string)
	LoadingChanged(loading bool)
}

// ObserverFuncs adapts bare functions to the Observer interface. Nil fields
// are skipped.
type ObserverFuncs struct {
	OnLocale  func(locale string)
	OnLoading func(loading bool)
}

var _ Observer = ObserverFuncs{}

func (o ObserverFuncs) LocaleChanged(locale string) {
	if o.OnLocale != nil {
		o.OnLocale(locale)
	}
}

func (o ObserverFuncs) LoadingChanged(loading bool) {
	if o.OnLoading != nil {
		o.OnLoading(loading)
	}
}
