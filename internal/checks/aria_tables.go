package checks

// Static ARIA lookup tables. Built once, never mutated.

// validRoles is the set of ARIA 1.1 roles accepted in an explicit role
// attribute.
var validRoles = map[string]struct{}{
	"alert": {}, "alertdialog": {}, "application": {}, "article": {},
	"banner": {}, "button": {}, "cell": {}, "checkbox": {},
	"columnheader": {}, "combobox": {}, "complementary": {},
	"contentinfo": {}, "definition": {}, "dialog": {}, "directory": {},
	"document": {}, "feed": {}, "figure": {}, "form": {}, "grid": {},
	"gridcell": {}, "group": {}, "heading": {}, "img": {}, "link": {},
	"list": {}, "listbox": {}, "listitem": {}, "log": {}, "main": {},
	"marquee": {}, "math": {}, "menu": {}, "menubar": {}, "menuitem": {},
	"menuitemcheckbox": {}, "menuitemradio": {}, "navigation": {},
	"none": {}, "note": {}, "option": {}, "presentation": {},
	"progressbar": {}, "radio": {}, "radiogroup": {}, "region": {},
	"row": {}, "rowgroup": {}, "rowheader": {}, "scrollbar": {},
	"search": {}, "searchbox": {}, "separator": {}, "slider": {},
	"spinbutton": {}, "status": {}, "switch": {}, "tab": {}, "table": {},
	"tablist": {}, "tabpanel": {}, "term": {}, "textbox": {}, "timer": {},
	"toolbar": {}, "tooltip": {}, "tree": {}, "treegrid": {},
	"treeitem": {},
}

// rolesRequiringName lists roles whose instances must expose an accessible
// name.
var rolesRequiringName = map[string]struct{}{
	"button": {}, "checkbox": {}, "combobox": {}, "dialog": {},
	"alertdialog": {}, "heading": {}, "link": {}, "listbox": {},
	"menuitem": {}, "menuitemcheckbox": {}, "menuitemradio": {},
	"option": {}, "progressbar": {}, "radio": {}, "radiogroup": {},
	"searchbox": {}, "slider": {}, "spinbutton": {}, "switch": {},
	"tab": {}, "textbox": {}, "treeitem": {},
}

// interactiveRoles lists roles whose instances must be focusable.
var interactiveRoles = map[string]struct{}{
	"button": {}, "checkbox": {}, "combobox": {}, "link": {},
	"listbox": {}, "menuitem": {}, "menuitemcheckbox": {},
	"menuitemradio": {}, "option": {}, "radio": {}, "scrollbar": {},
	"searchbox": {}, "slider": {}, "spinbutton": {}, "switch": {},
	"tab": {}, "textbox": {}, "treeitem": {},
}

// implicitRoles maps an HTML tag name to its default ARIA role. Consulted
// only when no explicit role attribute is supplied.
var implicitRoles = map[string]string{
	"a":        "link",
	"article":  "article",
	"aside":    "complementary",
	"button":   "button",
	"footer":   "contentinfo",
	"form":     "form",
	"h1":       "heading",
	"h2":       "heading",
	"h3":       "heading",
	"h4":       "heading",
	"h5":       "heading",
	"h6":       "heading",
	"header":   "banner",
	"img":      "img",
	"input":    "textbox",
	"li":       "listitem",
	"main":     "main",
	"nav":      "navigation",
	"ol":       "list",
	"option":   "option",
	"progress": "progressbar",
	"section":  "region",
	"select":   "listbox",
	"table":    "table",
	"textarea": "textbox",
	"ul":       "list",
}

// autocompleteTokens is the set of valid final tokens for the autocomplete
// attribute, per the HTML input-purposes list referenced by 1.3.5.
var autocompleteTokens = map[string]struct{}{
	"name": {}, "honorific-prefix": {}, "given-name": {},
	"additional-name": {}, "family-name": {}, "honorific-suffix": {},
	"nickname": {}, "username": {}, "new-password": {},
	"current-password": {}, "one-time-code": {}, "organization-title": {},
	"organization": {}, "street-address": {}, "address-line1": {},
	"address-line2": {}, "address-line3": {}, "address-level4": {},
	"address-level3": {}, "address-level2": {}, "address-level1": {},
	"country": {}, "country-name": {}, "postal-code": {}, "cc-name": {},
	"cc-given-name": {}, "cc-additional-name": {}, "cc-family-name": {},
	"cc-number": {}, "cc-exp": {}, "cc-exp-month": {}, "cc-exp-year": {},
	"cc-csc": {}, "cc-type": {}, "transaction-currency": {},
	"transaction-amount": {}, "language": {}, "bday": {}, "bday-day": {},
	"bday-month": {}, "bday-year": {}, "sex": {}, "url": {}, "photo": {},
	"tel": {}, "tel-country-code": {}, "tel-national": {},
	"tel-area-code": {}, "tel-local": {}, "tel-extension": {},
	"email": {}, "impp": {},
}
