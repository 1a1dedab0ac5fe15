package area

// Field is one recognized context field for an area. Name is the wire name
// used by the HTTP API; Title is the label rendered into the instruction
// document header when the field is a header-level field.
type Field struct {
	Name  string
	Title string
}

// Section is one sub-topic of the generated instruction document. The
// composer requests Count independently numbered proposals per section,
// each carrying the ordered Subfields as labeled lines. ContextField names
// the area field echoed as current context for the section; it is empty
// for sections generated without supplied context.
type Section struct {
	Title        string
	ItemLabel    string
	Count        int
	Subfields    []string
	ContextField string
}

// Schema is the full per-area contract: the ordered recognized fields plus
// the section skeleton the composer fills in.
type Schema struct {
	Area     Area
	Version  int
	Fields   []Field
	Sections []Section
}

// FieldNames returns the wire names of every recognized field, in order.
func (s Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Recognizes reports whether name is a recognized field for this schema.
func (s Schema) Recognizes(name string) bool {
	for _, f := range s.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// alignmentFields are the brief-alignment fields the contextual variant
// added to every area. They grew out of the btl schema and were later
// applied uniformly.
var alignmentFields = []Field{
	{Name: "marca", Title: "MARCA"},
	{Name: "objetivo", Title: "OBJETIVO"},
	{Name: "target", Title: "TARGET"},
	{Name: "restricciones", Title: "RESTRICCIONES"},
	{Name: "presupuesto", Title: "PRESUPUESTO / KPIs"},
}

var btlSections = []Section{
	{
		Title:        "CONCEPTOS CLAVE",
		ItemLabel:    "CONCEPTO",
		Count:        3,
		Subfields:    []string{"Descripción", "Por qué es disruptivo", "Elementos innovadores"},
		ContextField: "conceptos",
	},
	{
		Title:        "LOCACIONES",
		ItemLabel:    "LOCACIÓN",
		Count:        3,
		Subfields:    []string{"Descripción del espacio", "Por qué es disruptiva", "Ventajas únicas"},
		ContextField: "locaciones",
	},
	{
		Title:        "ANTES Y DESPUÉS",
		ItemLabel:    "TRANSFORMACIÓN",
		Count:        3,
		Subfields:    []string{"Descripción del cambio", "Impacto visual", "Elementos sorpresa"},
		ContextField: "antes-despues",
	},
	{
		Title:        "MOMENTO PEAK",
		ItemLabel:    "MOMENTO",
		Count:        3,
		Subfields:    []string{"Descripción del momento", "Factor sorpresa", "Impacto esperado"},
		ContextField: "momento-peak",
	},
	{
		Title:        "ACTIVACIONES",
		ItemLabel:    "ACTIVACIÓN",
		Count:        3,
		Subfields:    []string{"Descripción", "Elementos innovadores", "Interacción con el público"},
		ContextField: "activaciones",
	},
	{
		Title:        "PUESTA EN ESCENA",
		ItemLabel:    "ESCENA",
		Count:        3,
		Subfields:    []string{"Descripción visual", "Elementos destacados", "Factor wow"},
		ContextField: "puesta-escena",
	},
	{
		Title:        "FORMA DE INVITAR",
		ItemLabel:    "INVITACIÓN",
		Count:        3,
		Subfields:    []string{"Descripción del método", "Factor sorpresa", "Llamado a la acción"},
		ContextField: "forma-invitar",
	},
}

var tradeSections = []Section{
	{
		Title:        "MATERIAL POP",
		ItemLabel:    "PROPUESTA",
		Count:        3,
		Subfields:    []string{"Descripción del material", "Innovación principal", "Impacto en punto de venta"},
		ContextField: "material-pop",
	},
	{
		Title:        "DINÁMICAS",
		ItemLabel:    "DINÁMICA",
		Count:        3,
		Subfields:    []string{"Descripción", "Elementos disruptivos", "Interacción con el consumidor"},
		ContextField: "dinamicas",
	},
	{
		Title:        "MATERIALIDAD",
		ItemLabel:    "MATERIAL",
		Count:        3,
		Subfields:    []string{"Descripción", "Innovación", "Impacto visual"},
		ContextField: "materialidad",
	},
}

var digitalSections = []Section{
	{
		Title:        "CONTENIDO",
		ItemLabel:    "CONTENIDO",
		Count:        3,
		Subfields:    []string{"Descripción", "Formato innovador", "Engagement esperado"},
		ContextField: "contenido",
	},
	{
		Title:        "CONCEPTOS",
		ItemLabel:    "CONCEPTO",
		Count:        3,
		Subfields:    []string{"Descripción", "Elementos innovadores", "Viralización esperada"},
		ContextField: "conceptos",
	},
	{
		Title:     "PLATAFORMAS",
		ItemLabel: "ESTRATEGIA",
		Count:     3,
		Subfields: []string{"Plataformas principales", "Uso innovador", "Integración cross-platform"},
	},
}

var ideasSections = []Section{
	{
		Title:     "CONCEPTO GENERAL",
		ItemLabel: "IDEA",
		Count:     3,
		Subfields: []string{"Descripción del concepto", "Por qué es disruptivo", "Elementos innovadores"},
	},
	{
		Title:     "IMPLEMENTACIÓN",
		ItemLabel: "PROPUESTA",
		Count:     3,
		Subfields: []string{"Descripción detallada", "Aspectos técnicos", "Factores diferenciadores"},
	},
	{
		Title:     "IMPACTO ESPERADO",
		ItemLabel: "IMPACTO",
		Count:     3,
		Subfields: []string{"Descripción del impacto", "Métricas esperadas", "Factores de éxito"},
	},
}

func baseFields(a Area) []Field {
	switch a {
	case BTL:
		return []Field{
			{Name: "solicitud", Title: "SOLICITUD PRINCIPAL"},
			{Name: "conceptos"},
			{Name: "locaciones"},
			{Name: "antes-despues"},
			{Name: "momento-peak"},
			{Name: "activaciones"},
			{Name: "puesta-escena"},
			{Name: "forma-invitar"},
		}
	case Trade:
		return []Field{
			{Name: "solicitud", Title: "SOLICITUD PRINCIPAL"},
			{Name: "material-pop"},
			{Name: "dinamicas"},
			{Name: "materialidad"},
		}
	case Digital:
		return []Field{
			{Name: "solicitud", Title: "SOLICITUD PRINCIPAL"},
			{Name: "contenido"},
			{Name: "conceptos"},
		}
	case Ideas:
		return []Field{
			{Name: "solicitud", Title: "SOLICITUD PRINCIPAL"},
			{Name: "no-queremos", Title: "IDEAS A EVITAR"},
		}
	}
	return nil
}

func baseSections(a Area) []Section {
	switch a {
	case BTL:
		return btlSections
	case Trade:
		return tradeSections
	case Digital:
		return digitalSections
	case Ideas:
		return ideasSections
	}
	return nil
}

// SchemaFor returns the schema governing one area under the given template
// variant. Unknown areas are rejected with ErrInvalidArea.
func SchemaFor(a Area, v Variant) (Schema, error) {
	if _, err := Parse(string(a)); err != nil {
		return Schema{}, err
	}

	s := Schema{Area: a, Version: 1}
	s.Fields = append(s.Fields, baseFields(a)...)
	s.Sections = append([]Section(nil), baseSections(a)...)

	if v == VariantContextual {
		s.Version = 2
		s.Fields = append(s.Fields, alignmentFields...)
		// The area-wide idea batch grew from 3 to 5 proposals in the
		// contextual generation of the templates.
		if a == Ideas {
			s.Sections[0].Count = 5
		}
	}

	return s, nil
}
