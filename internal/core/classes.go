package core

// Class names shared with accordion.css.
const (
	ClassPanel              = "panel"
	ClassOpen               = "open"
	ClassClosed             = "closed"
	ClassTransitioning      = "transitioning"
	ClassHeader             = "header"
	ClassWithDescription    = "with-description"
	ClassWithoutDescription = "without-description"
	ClassTitle              = "title"
	ClassDescription        = "description"
	ClassToggle             = "toggle"
	ClassContent            = "content"
	ClassInner              = "inner"
	ClassAccordion          = "accordion"
	ClassAccordionHeader    = "accordion-header"
	ClassMainTitle          = "main-title"
)

const AttrIndex = "data-index"
