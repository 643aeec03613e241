package datefmt

import (
	"time"

	"golang.org/x/text/language"
)

// Built-in locale tables. Names follow CLDR wide forms; abbreviations are the
// undotted short forms calendar headers use.

var localeEnglish = Locale{
	Tag: language.English,
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	MonthsShort: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	Weekdays: [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	},
	WeekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	WeekStart:     time.Sunday,
}

var localeGerman = Locale{
	Tag: language.German,
	Months: [12]string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
	MonthsShort: [12]string{
		"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
		"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
	},
	Weekdays: [7]string{
		"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
	},
	WeekdaysShort: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	WeekStart:     time.Monday,
}

var localeFrench = Locale{
	Tag: language.French,
	Months: [12]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	MonthsShort: [12]string{
		"janv", "févr", "mars", "avr", "mai", "juin",
		"juil", "août", "sept", "oct", "nov", "déc",
	},
	Weekdays: [7]string{
		"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
	},
	WeekdaysShort: [7]string{"dim", "lun", "mar", "mer", "jeu", "ven", "sam"},
	WeekStart:     time.Monday,
}

var localeSpanish = Locale{
	Tag: language.Spanish,
	Months: [12]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
	MonthsShort: [12]string{
		"ene", "feb", "mar", "abr", "may", "jun",
		"jul", "ago", "sep", "oct", "nov", "dic",
	},
	Weekdays: [7]string{
		"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
	},
	WeekdaysShort: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	WeekStart:     time.Monday,
}

var localeItalian = Locale{
	Tag: language.Italian,
	Months: [12]string{
		"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
		"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
	},
	MonthsShort: [12]string{
		"gen", "feb", "mar", "apr", "mag", "giu",
		"lug", "ago", "set", "ott", "nov", "dic",
	},
	Weekdays: [7]string{
		"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato",
	},
	WeekdaysShort: [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
	WeekStart:     time.Monday,
}

var localePortuguese = Locale{
	Tag: language.Portuguese,
	Months: [12]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	},
	MonthsShort: [12]string{
		"jan", "fev", "mar", "abr", "mai", "jun",
		"jul", "ago", "set", "out", "nov", "dez",
	},
	Weekdays: [7]string{
		"domingo", "segunda-feira", "terça-feira", "quarta-feira",
		"quinta-feira", "sexta-feira", "sábado",
	},
	WeekdaysShort: [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"},
	WeekStart:     time.Monday,
}

var localeDutch = Locale{
	Tag: language.Dutch,
	Months: [12]string{
		"januari", "februari", "maart", "april", "mei", "juni",
		"juli", "augustus", "september", "oktober", "november", "december",
	},
	MonthsShort: [12]string{
		"jan", "feb", "mrt", "apr", "mei", "jun",
		"jul", "aug", "sep", "okt", "nov", "dec",
	},
	Weekdays: [7]string{
		"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag",
	},
	WeekdaysShort: [7]string{"zo", "ma", "di", "wo", "do", "vr", "za"},
	WeekStart:     time.Monday,
}

var localePolish = Locale{
	Tag: language.Polish,
	Months: [12]string{
		"styczeń", "luty", "marzec", "kwiecień", "maj", "czerwiec",
		"lipiec", "sierpień", "wrzesień", "październik", "listopad", "grudzień",
	},
	MonthsShort: [12]string{
		"sty", "lut", "mar", "kwi", "maj", "cze",
		"lip", "sie", "wrz", "paź", "lis", "gru",
	},
	Weekdays: [7]string{
		"niedziela", "poniedziałek", "wtorek", "środa", "czwartek", "piątek", "sobota",
	},
	WeekdaysShort: [7]string{"nie", "pon", "wto", "śro", "czw", "pią", "sob"},
	WeekStart:     time.Monday,
}

var localeUkrainian = Locale{
	Tag: language.Ukrainian,
	Months: [12]string{
		"січень", "лютий", "березень", "квітень", "травень", "червень",
		"липень", "серпень", "вересень", "жовтень", "листопад", "грудень",
	},
	MonthsShort: [12]string{
		"січ", "лют", "бер", "кві", "тра", "чер",
		"лип", "сер", "вер", "жов", "лис", "гру",
	},
	Weekdays: [7]string{
		"неділя", "понеділок", "вівторок", "середа", "четвер", "п’ятниця", "субота",
	},
	WeekdaysShort: [7]string{"нд", "пн", "вт", "ср", "чт", "пт", "сб"},
	WeekStart:     time.Monday,
}

// builtinLocales is ordered to match supportedTags: the matcher returns an
// index into this slice. English stays first as the universal fallback.
var builtinLocales = []Locale{
	localeEnglish,
	localeGerman,
	localeFrench,
	localeSpanish,
	localeItalian,
	localePortuguese,
	localeDutch,
	localePolish,
	localeUkrainian,
}

var supportedTags = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Portuguese,
	language.Dutch,
	language.Polish,
	language.Ukrainian,
}

var localeMatcher = language.NewMatcher(supportedTags)
