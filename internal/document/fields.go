package document

import "fmt"

// FieldName identifies one slot of a Record. The order of the constants is the
// order fields are listed, validated and serialized.
type FieldName int

const (
	FieldDocumentType FieldName = iota
	FieldIssuerCode
	FieldSurnames
	FieldGivenNames
	FieldDocumentNumber
	FieldSupportNumber
	FieldSupportNumberCheck
	FieldNationality
	FieldBirthDate
	FieldBirthDateCheck
	FieldSex
	FieldExpiryDate
	FieldExpiryDateCheck
	FieldOptionalData
	FieldFinalCheck
	FieldAddress
	FieldLocality
	FieldProvince
	FieldCountry
	FieldBirthPlace

	fieldCount
)

// Wire keys shared with the front-end, the extraction prompt and the sheet.
var wireKeys = [fieldCount]string{
	FieldDocumentType:       "tipoDocumento",
	FieldIssuerCode:         "codigoEmisor",
	FieldSurnames:           "apellidos",
	FieldGivenNames:         "nombres",
	FieldDocumentNumber:     "numeroDocumento",
	FieldSupportNumber:      "numeroSoporte",
	FieldSupportNumberCheck: "digitoControlNumero",
	FieldNationality:        "nacionalidad",
	FieldBirthDate:          "fechaNacimiento",
	FieldBirthDateCheck:     "digitoControlFechaNac",
	FieldSex:                "sexo",
	FieldExpiryDate:         "fechaCaducidad",
	FieldExpiryDateCheck:    "digitoControlCaducidad",
	FieldOptionalData:       "datosOpcionales",
	FieldFinalCheck:         "checkFinal",
	FieldAddress:            "direccion",
	FieldLocality:           "localidad",
	FieldProvince:           "provincia",
	FieldCountry:            "pais",
	FieldBirthPlace:         "lugarNacimiento",
}

var byWireKey = func() map[string]FieldName {
	m := make(map[string]FieldName, fieldCount)
	for i, k := range wireKeys {
		m[k] = FieldName(i)
	}
	return m
}()

// String returns the wire key of the field.
func (f FieldName) String() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("FieldName(%d)", int(f))
	}
	return wireKeys[f]
}

// ParseFieldName resolves a wire key.
func ParseFieldName(key string) (FieldName, bool) {
	f, ok := byWireKey[key]
	return f, ok
}

// FieldNames returns every field in declaration order.
func FieldNames() []FieldName {
	names := make([]FieldName, fieldCount)
	for i := range names {
		names[i] = FieldName(i)
	}
	return names
}
