// Package schema defines the nested German ATLAS export declaration
// structure that extracted document fields are mapped onto. Every leaf is a
// *string: nil means the field is absent and marshals as JSON null, so a
// freshly constructed Document serializes as the complete empty template.
package schema

// Document is the root of an export declaration (AES/ATLAS Ausfuhranmeldung).
type Document struct {
	Nachrichtensender                     Nachrichtensender     `json:"nachrichtensender"`
	Nachrichtenempfanger                  Nachrichtenempfanger  `json:"nachrichtenempfanger"`
	Kopf                                  Kopf                  `json:"kopf"`
	Bewilligung                           Bewilligung           `json:"bewilligung"`
	Gestellungszollstelle                 Gestellungszollstelle `json:"gestellungszollstelle"`
	Ausfuhrzollstelle                     Ausfuhrzollstelle     `json:"ausfuhrzollstelle"`
	AusfuhrZollstelleFurDieErganzende     ErganzendeZollstelle  `json:"ausfuhrZollstelleFurDieErganzende"`
	VorgeseheneAusgangszollstelle         VorgeseheneAusgangszollstelle  `json:"vorgeseheneAusgangszollstelle"`
	TatsachlicheAusgangszollstelle        TatsachlicheAusgangszollstelle `json:"tatsachlicheAusgangszollstelle"`
	AussenwirtschaftsrechtlicherAusfuhrer Beteiligter           `json:"aussenwirtschaftsrechtlicherAusfuhrer"`
	Ausfuhrer                             Beteiligter           `json:"ausfuhrer"`
	Anmelder                              Anmelder              `json:"anmelder"`
	Vertreter                             Vertreter             `json:"vertreter"`
	Subunternehmer                        Beteiligter           `json:"subunternehmer"`
	Lieferung                             Lieferung             `json:"lieferung"`
	Vorpapier                             []Vorpapier           `json:"vorpapier"`
	Unterlage                             []Unterlage           `json:"unterlage"`
	SonstigerVerweis                      []SonstigerVerweis    `json:"sonstigerVerweis"`
	ZusatzlicherInformation               []ZusatzlicheInformation `json:"zusatzlicherInformation"`
	Sendung                               Sendung               `json:"sendung"`
	Position                              []Position            `json:"position"`

	// AdditionalFields collects mapped values that have no dedicated leaf in
	// the declaration tree, keyed by canonical field name.
	AdditionalFields map[string]any `json:"additional_fields,omitempty"`
}

type Nachrichtensender struct {
	EoriNiederlassungsnummer *string `json:"eoriNiederlassungsnummer"`
}

type Nachrichtenempfanger struct {
	Dienststellennummer *string `json:"dienststellennummer"`
}

// Kopf holds declaration-level header data.
type Kopf struct {
	Lrn                               *string `json:"lrn"`
	ArtderAnmeldung                   *string `json:"artderAnmeldung"`
	ArtderAusfuhranmeldung            *string `json:"artderAusfuhranmeldung"`
	BeteiligtenKonstellation          *string `json:"beteiligtenKonstellation"`
	ZeitpunktderAnmeldung             *string `json:"zeitpunktderAnmeldung"`
	MassgeblichesDatum                *string `json:"massgeblichesDatum"`
	KopfDatumdesAusgangs              *string `json:"kopfDatumdesAusgangs"`
	ZeitpunktDerGestellung            *string `json:"zeitpunktDerGestellung"`
	ZeitpunktdesEndesderLadetatigkeit *string `json:"zeitpunktdesEndesderLadetatigkeit"`
	Sicherheit                        *string `json:"sicherheit"`
	BesondereUmstande                 *string `json:"besondereUmstande"`
	InRechnunggestellterGesamtbetrag  *string `json:"inRechnunggestellterGesamtbetrag"`
	Rechnungswahrung                  *string `json:"rechnungswahrung"`
}

type Bewilligung struct {
	Sequenznummer  *string `json:"sequenznummer"`
	Art            *string `json:"art"`
	Referenznummer *string `json:"referenznummer"`
}

type Gestellungszollstelle struct {
	Gestellungszollstelle *string `json:"gestellungszollstelle"`
}

type Ausfuhrzollstelle struct {
	AusfuhrzollstelleDienststellennummer *string `json:"ausfuhrzollstelleDienststellennummer"`
}

type ErganzendeZollstelle struct {
	AusfuhrZollstelleFurDieErganzende *string `json:"ausfuhrZollstelleFurDieErganzende"`
}

type VorgeseheneAusgangszollstelle struct {
	VorgeseheneAusgangszollstelleDienststellennummer *string `json:"vorgeseheneAusgangszollstelleDienststellennummer"`
}

type TatsachlicheAusgangszollstelle struct {
	TatsachlicheAusgangszollstelleDienststellennummer *string `json:"tatsachlicheAusgangszollstelleDienststellennummer"`
}

// Adresse is the shared street address block of all party types.
type Adresse struct {
	Strasse *string `json:"strasse"`
	Plz     *string `json:"plz"`
	Ort     *string `json:"ort"`
	Land    *string `json:"land"`
}

type Ansprechpartner struct {
	AnsprechName  *string `json:"ansprechName"`
	Phone         *string `json:"phone"`
	AnsprechEmail *string `json:"ansprechEmail"`
}

// Beteiligter is a party identified by EORI/TIN with name and address.
type Beteiligter struct {
	Tin                  *string `json:"tin"`
	NiederlassungsNummer *string `json:"niederlassungsNummer"`
	Name                 *string `json:"name"`
	Adresse              Adresse `json:"adresse"`
}

// Anmelder is the declarant party; unlike other parties it carries a contact.
type Anmelder struct {
	Tin                  *string         `json:"tin"`
	NiederlassungsNummer *string         `json:"niederlassungsNummer"`
	Name                 *string         `json:"name"`
	Adresse              Adresse         `json:"adresse"`
	Ansprechpartner      Ansprechpartner `json:"ansprechpartner"`
}

// Vertreter is the representative; identified by number and contact only.
type Vertreter struct {
	Tin                  *string         `json:"tin"`
	NiederlassungsNummer *string         `json:"niederlassungsNummer"`
	Ansprechpartner      Ansprechpartner `json:"ansprechpartner"`
}

// Beforderer is the carrier; identified by number only.
type Beforderer struct {
	Tin                  *string `json:"tin"`
	NiederlassungsNummer *string `json:"niederlassungsNummer"`
}

type LieferkettenBeteiligter struct {
	Sequenznummer        *string `json:"sequenznummer"`
	Funktion             *string `json:"funktion"`
	Identifikationsnummer *string `json:"identifikationsnummer"`
}

type Lieferbedingungen struct {
	LieferbedingungIncotermCode *string `json:"lieferbedingungIncotermCode"`
	LieferbedingungUnLocode     *string `json:"lieferbedingungUnLocode"`
	LieferbedingungOrt          *string `json:"lieferbedingungOrt"`
	LieferbedingungLand         *string `json:"lieferbedingungLand"`
	LieferbedingungText         *string `json:"lieferbedingungText"`
}

type Wiedereinfuhr struct {
	Position          *string `json:"position"`
	WiedereinfuhrLand *string `json:"wiedereinfuhrLand"`
}

type Namlichkeitsmittel struct {
	Position                                *string `json:"position"`
	NamlichkeitsmitteArt                    *string `json:"namlichkeitsmitteArt"`
	NamlichkeitsmittelTextlicheBeschreibung *string `json:"namlichkeitsmittelTextlicheBeschreibung"`
}

// Warennummer is the HS/CN commodity code pair.
type Warennummer struct {
	UnterpositionDesHarmonisiertenSystems   *string `json:"unterpositionDesHarmonisiertenSystems"`
	UnterpositionDerKombiniertenNomenklatur *string `json:"unterpositionDerKombiniertenNomenklatur"`
}

type ErzeugnisWare struct {
	ErzeugnisWarenbezeichnung *string     `json:"erzeugnisWarenbezeichnung"`
	Warennummer               Warennummer `json:"warennummer"`
}

type Erzeugnis struct {
	Position *string       `json:"position"`
	Ware     ErzeugnisWare `json:"ware"`
}

type LieferungPassiveVeredelung struct {
	Wiedereinfuhr      []Wiedereinfuhr      `json:"wiedereinfuhr"`
	Namlichkeitsmittel []Namlichkeitsmittel `json:"namlichkeitsmittel"`
	Erzeugnis          []Erzeugnis          `json:"erzeugnis"`
}

type Lieferung struct {
	ArtdesGeschafts         *string                    `json:"artdesGeschafts"`
	AusfuhrLand             *string                    `json:"ausfuhrLand"`
	BestimmungsLand         *string                    `json:"bestimmungsLand"`
	LieferkettenBeteiligter []LieferkettenBeteiligter  `json:"lieferkettenBeteiligter"`
	Lieferbedingungen       Lieferbedingungen          `json:"lieferbedingungen"`
	PassiveVeredelung       LieferungPassiveVeredelung `json:"passiveVeredelung"`
}

type Vorpapier struct {
	Sequenznummer  *string `json:"sequenznummer"`
	Art            *string `json:"art"`
	Qualifikator   *string `json:"qualifikator"`
	Referenznummer *string `json:"referenznummer"`
}

type Unterlage struct {
	Sequenznummer        *string `json:"sequenznummer"`
	Art                  *string `json:"art"`
	Qualifikator         *string `json:"qualifikator"`
	Referenznummer       *string `json:"referenznummer"`
	ZeilenPositionsnummer *string `json:"zeilenPositionsnummer"`
	Name                 *string `json:"name"`
	DatumDerAusstellung  *string `json:"datumDerAusstellung"`
	Gultigkeitsdatum     *string `json:"gultigkeitsdatum"`
}

type SonstigerVerweis struct {
	Sequenznummer  *string `json:"sequenznummer"`
	Art            *string `json:"art"`
	Qualifikator   *string `json:"qualifikator"`
	Referenznummer *string `json:"referenznummer"`
}

type ZusatzlicheInformation struct {
	Sequenznummer *string `json:"sequenznummer"`
	Code          *string `json:"code"`
	Text          *string `json:"text"`
}

type Verschluss struct {
	Sequenznummer        *string `json:"sequenznummer"`
	Verschlusskennzeichen *string `json:"verschlusskennzeichen"`
}

type Warenpositionsverweis struct {
	Sequenznummer  *string `json:"sequenznummer"`
	Positionsnummer *string `json:"positionsnummer"`
}

type Transportausrustung struct {
	Sequenznummer        *string                 `json:"sequenznummer"`
	Containernummer      *string                 `json:"containernummer"`
	AnzahlderVerschlusse *string                 `json:"anzahlderVerschlusse"`
	Verschluss           []Verschluss            `json:"verschluss"`
	Warenpositionsverweis []Warenpositionsverweis `json:"warenpositionsverweis"`
}

type Gnss struct {
	WarenortGnssBreite *string `json:"warenortGnssBreite"`
	WarenortGnssLang   *string `json:"warenortGnssLang"`
}

// WarenortAdresse is the goods-location address; it carries a name in
// addition to the shared address fields.
type WarenortAdresse struct {
	Name    *string `json:"name"`
	Strasse *string `json:"strasse"`
	Plz     *string `json:"plz"`
	Ort     *string `json:"ort"`
	Land    *string `json:"land"`
}

type Warenort struct {
	WarenortArtdesOrtes          *string         `json:"warenortArtdesOrtes"`
	WarenortArtDerOrtsbestimmung *string         `json:"warenortArtDerOrtsbestimmung"`
	WarenortBewilligungsnummer   *string         `json:"warenortBewilligungsnummer"`
	WarenortZusatzlicheKennung   *string         `json:"warenortZusatzlicheKennung"`
	WarenortUnLocode             *string         `json:"warenortUnLocode"`
	Gnss                         Gnss            `json:"gnss"`
	Adresse                      WarenortAdresse `json:"adresse"`
	Ansprechpartner              Ansprechpartner `json:"ansprechpartner"`
}

type BeforderungsmittelBeimAbgang struct {
	Sequenznummer       *string `json:"sequenznummer"`
	ArtderIdentifikation *string `json:"artderIdentifikation"`
	Kennzeichen         *string `json:"kennzeichen"`
	Staatszugehorigkeit *string `json:"staatszugehorigkeit"`
}

type Beforderungsroute struct {
	Sequenznummer    *string `json:"sequenznummer"`
	AusgewahlteLander *string `json:"ausgewahlteLander"`
}

type GrenzBeforderungsmittel struct {
	BeforderungsmittelderGrenzeArt                 *string `json:"beforderungsmittelderGrenzeArt"`
	BeforderungsmittelderGrenzeKennzeichen         *string `json:"beforderungsmittelderGrenzeKennzeichen"`
	BeforderungsmittelderGrenzeStaatszugehorigkeit *string `json:"beforderungsmittelderGrenzeStaatszugehorigkeit"`
}

type Transportdokument struct {
	Sequenznummer  *string `json:"sequenznummer"`
	Art            *string `json:"art"`
	Qualifikator   *string `json:"qualifikator"`
	Referenznummer *string `json:"referenznummer"`
}

type Beforderungskosten struct {
	BeforderungskostenZahlungsart *string `json:"beforderungskostenZahlungsart"`
}

// Sendung is the shipment block.
type Sendung struct {
	ContainerIndikator       *string                        `json:"containerIndikator"`
	InlandischerVerkehrszweig *string                       `json:"inlandischerVerkehrszweig"`
	VerkehrszweigAnDerGrenze *string                        `json:"verkehrszweigAnDerGrenze"`
	GesamtRohmasse           *string                        `json:"gesamtRohmasse"`
	ReferenznummerUCR        *string                        `json:"referenznummerUCR"`
	Registriernummerextern   *string                        `json:"registriernummerextern"`
	Beforderer               Beforderer                     `json:"beforderer"`
	Versender                Beteiligter                    `json:"versender"`
	Empfanger                Beteiligter                    `json:"empfanger"`
	Transportausrustung      []Transportausrustung          `json:"transportausrustung"`
	Warenort                 Warenort                       `json:"warenort"`
	BeforderungsmittelBeimAbgang []BeforderungsmittelBeimAbgang `json:"beforderungsmittelBeimAbgang"`
	Beforderungsroute        []Beforderungsroute            `json:"beforderungsroute"`
	GrenzuberschreitendesAktivesBeforderungsmittel GrenzBeforderungsmittel `json:"grenzuberschreitendesAktivesBeforderungsmittel"`
	Transportdokument        []Transportdokument            `json:"transportdokument"`
	Beforderungskosten       Beforderungskosten             `json:"beforderungskosten"`
}

type PositionBewilligung struct {
	Sequenznummer     *string `json:"sequenznummer"`
	Art               *string `json:"art"`
	Referenznummer    *string `json:"referenznummer"`
	Bewilligungsinhaber *string `json:"bewilligungsinhaber"`
}

type ZusatzlichesVerfahren struct {
	Sequenznummer        *string `json:"sequenznummer"`
	ZusatzlichesVerfahren *string `json:"zusatzlichesVerfahren"`
}

type Verfahren struct {
	BeantragtesVerfahren   *string                 `json:"beantragtesVerfahren"`
	VorhergehendesVerfahren *string                `json:"vorhergehendesVerfahren"`
	ZusatzlichesVerfahren  []ZusatzlichesVerfahren `json:"zusatzlichesVerfahren"`
}

type Ursprung struct {
	Ursprungsland            *string `json:"ursprungsland"`
	UrsprungsVersendungsregion *string `json:"ursprungsVersendungsregion"`
}

type Tariczusatzcode struct {
	Sequenznummer  *string `json:"sequenznummer"`
	Tariczusatzcode *string `json:"tariczusatzcode"`
}

type Gefahrgut struct {
	Sequenznummer *string `json:"sequenznummer"`
	Unnummer      *string `json:"unnummer"`
}

type Vermessung struct {
	WareRohmasse               *string `json:"wareRohmasse"`
	WareEigenmasse             *string `json:"wareEigenmasse"`
	MengeinbesondererMabeinheit *string `json:"mengeinbesondererMabeinheit"`
}

// Ware holds the goods description block of one position.
type Ware struct {
	WareWarenbezeichnung *string           `json:"wareWarenbezeichnung"`
	Warecusnummer        *string           `json:"warecusnummer"`
	WareWarennummerKN8   Warennummer       `json:"wareWarennummerKN8"`
	Tariczusatzcode      []Tariczusatzcode `json:"tariczusatzcode"`
	Gefahrgut            []Gefahrgut       `json:"gefahrgut"`
	Vermessung           Vermessung        `json:"vermessung"`
}

type Packstuckverweis struct {
	PackstuckverweisPositionsnummer *string `json:"packstuckverweisPositionsnummer"`
}

type Verpackung struct {
	Sequenznummer      *string          `json:"sequenznummer"`
	ArtderVerpackung   *string          `json:"artderVerpackung"`
	AnzahlderPackstucke *string         `json:"anzahlderPackstucke"`
	Versandzeichen     *string          `json:"versandzeichen"`
	Packstuckverweis   Packstuckverweis `json:"packstuckverweis"`
}

type PositionVorpapier struct {
	Sequenznummer          *string `json:"sequenznummer"`
	VorpapierArt           *string `json:"vorpapierArt"`
	VorpapierQualifikator  *string `json:"vorpapierQualifikator"`
	VorpapierReferenznummer *string `json:"vorpapierReferenznummer"`
	VorpapierPositionsnummer *string `json:"vorpapierPositionsnummer"`
	VorpapierMabeinhet     *string `json:"vorpapierMabeinhet"`
	VorpapierMenge         *string `json:"vorpapierMenge"`
	VorpapierZusatzlicheAngaben *string `json:"vorpapierZusatzlicheAngaben"`
}

type PositionUnterlage struct {
	Sequenznummer             *string `json:"sequenznummer"`
	Art                       *string `json:"art"`
	Qualifikator              *string `json:"qualifikator"`
	Referenznummer            *string `json:"referenznummer"`
	ZeilenPositionsnummer     *string `json:"zeilenPositionsnummer"`
	ZusatzlicheAngaben        *string `json:"zusatzlicheAngaben"`
	Detail                    *string `json:"detail"`
	NamederausstellendenBehorde *string `json:"namederausstellendenBehorde"`
	DatumderAusstellung       *string `json:"datumderAusstellung"`
	Gultigkeitsdatum          *string `json:"gultigkeitsdatum"`
	Mabeinheit                *string `json:"mabeinheit"`
	ErganzendeMabeinheit      *string `json:"erganzendeMabeinheit"`
	Menge                     *string `json:"menge"`
	Wahrung                   *string `json:"wahrung"`
	Betrag                    *string `json:"betrag"`
}

type PositionSonstigerVerweis struct {
	Sequenznummer  *string `json:"sequenznummer"`
	Art            *string `json:"art"`
	Qualifikator   *string `json:"qualifikator"`
	Referenznummer *string `json:"referenznummer"`
	Detail         *string `json:"detail"`
	Wahrung        *string `json:"wahrung"`
	Betrag         *string `json:"betrag"`
}

type PositionPassiveVeredelung struct {
	StandardaustauschErsatzwarenverkehr *string `json:"standardaustauschErsatzwarenverkehr"`
	DatumderWiedereinfuhr               *string `json:"datumderWiedereinfuhr"`
}

type NationalerZusatzcode struct {
	NationalerZusatzcode *string `json:"nationalerZusatzcode"`
}

type ZolllagerWarennummer struct {
	UnterpositionDesHarmonisiertenSystems   *string              `json:"unterpositionDesHarmonisiertenSystems"`
	UnterpositionDerKombiniertenNomenklatur *string              `json:"unterpositionDerKombiniertenNomenklatur"`
	TaricCode                               *string              `json:"taricCode"`
	NationalerZusatzcode                    NationalerZusatzcode `json:"nationalerZusatzcode"`
}

type Abgangsmenge struct {
	AbgangsmengeMabeinheit  *string `json:"abgangsmengeMabeinheit"`
	AbgangsmengeQualifikator *string `json:"abgangsmengeQualifikator"`
	AbgangsmengeMenge       *string `json:"abgangsmengeMenge"`
}

type Handelsmenge struct {
	HandelsmengeMabeinheit  *string `json:"handelsmengeMabeinheit"`
	HandelsmengeQualifikator *string `json:"handelsmengeQualifikator"`
	HandelsmengeMenge       *string `json:"handelsmengeMenge"`
}

type ZolllagerWare struct {
	Warennummer  ZolllagerWarennummer `json:"warennummer"`
	Abgangsmenge Abgangsmenge         `json:"abgangsmenge"`
	Handelsmenge Handelsmenge         `json:"handelsmenge"`
}

type ZolllagerPosition struct {
	Sequenznummer    *string       `json:"sequenznummer"`
	Zuganginatlas    *string       `json:"zuganginatlas"`
	Mrn              *string       `json:"mrn"`
	Registriernummer *string       `json:"registriernummer"`
	Positionsnummer  *string       `json:"positionsnummer"`
	Ublichebehandlung *string      `json:"ublichebehandlung"`
	Zusatzlicheangaben *string     `json:"zusatzlicheangaben"`
	Ware             ZolllagerWare `json:"ware"`
}

type ZolllagerBewilligung struct {
	ZolllagerBewilligungArt           *string `json:"zolllagerBewilligungArt"`
	ZolllagerBewilligungReferenznummer *string `json:"zolllagerBewilligungReferenznummer"`
}

type Zolllager struct {
	ZolllagerLrn *string              `json:"zolllagerLrn"`
	Bewilligung  ZolllagerBewilligung `json:"bewilligung"`
	Zolllager    []ZolllagerPosition  `json:"zolllager"`
}

type AvBewilligung struct {
	BewilligungArt           *string `json:"bewilligungArt"`
	BewilligungReferenznummer *string `json:"bewilligungReferenznummer"`
}

type UberwachungsZollstelle struct {
	UberwachungsZollstelleReferenznummer *string `json:"uberwachungsZollstelleReferenznummer"`
}

type AvWare struct {
	PositionAvWarenbezogeneAngaben *string `json:"positionAvWarenbezogeneAngaben"`
}

type AvPosition struct {
	PositionAvSequenznummer   *string `json:"positionAvSequenznummer"`
	PositionAvZugangInAtlas   *string `json:"positionAvZugangInAtlas"`
	WarenPositionMrn          *string `json:"warenPositionMrn"`
	PositionAvRegistriernummer *string `json:"positionAvRegistriernummer"`
	PositionAvPositionsnummer *string `json:"positionAvPositionsnummer"`
	Ware                      AvWare  `json:"ware"`
}

type AktiveVeredelung struct {
	VereinfachtErteilteBewilligung *string                `json:"vereinfachtErteilteBewilligung"`
	Bewilligung                    AvBewilligung          `json:"bewilligung"`
	UberwachungsZollstelle         UberwachungsZollstelle `json:"uberwachungsZollstelle"`
	VerfahrensubergangAv           []AvPosition           `json:"verfahrensubergangAv"`
}

type VerfahrensubergangAv struct {
	Zolllager        Zolllager        `json:"zolllager"`
	AktiveVeredelung AktiveVeredelung `json:"aktiveVeredelung"`
}

// Position is one goods item of the declaration.
type Position struct {
	Sequenznummer          *string                    `json:"sequenznummer"`
	WarePositionsnummer    *string                    `json:"warePositionsnummer"`
	StatistischerWert      *string                    `json:"statistischerWert"`
	ArtdesGeschafts        *string                    `json:"artdesGeschafts"`
	AusfuhrLand            *string                    `json:"ausfuhrLand"`
	ReferenznummerUCR      *string                    `json:"referenznummerUCR"`
	Registriernummerextern *string                    `json:"registriernummerextern"`
	Bewilligung            []PositionBewilligung      `json:"bewilligung"`
	Verfahren              Verfahren                  `json:"verfahren"`
	Versender              Beteiligter                `json:"versender"`
	WareEmpfanger          Beteiligter                `json:"wareEmpfanger"`
	LieferkettenBeteiligter []LieferkettenBeteiligter `json:"lieferkettenBeteiligter"`
	Ursprung               Ursprung                   `json:"ursprung"`
	Ware                   Ware                       `json:"ware"`
	Verpackung             []Verpackung               `json:"verpackung"`
	Vorpapier              []PositionVorpapier        `json:"vorpapier"`
	Unterlage              []PositionUnterlage        `json:"unterlage"`
	SonstigerVerweis       []PositionSonstigerVerweis `json:"sonstigerVerweis"`
	ZusatzlicheInformationlist []ZusatzlicheInformation `json:"zusatzlicheInformationlist"`
	Beforderungskosten     Beforderungskosten         `json:"beforderungskosten"`
	PassiveVeredelung      PositionPassiveVeredelung  `json:"passiveVeredelung"`
	VerfahrensubergangAv   VerfahrensubergangAv       `json:"verfahrensubergangAv"`
}
