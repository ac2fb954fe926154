package constants

// Damage severity grades on an annotation box. Default A.
const (
	SeverityA = "A"
	SeverityB = "B"
	SeverityC = "C"
	SeverityD = "D"
)

func IsValidSeverity(s string) bool {
	switch s {
	case SeverityA, SeverityB, SeverityC, SeverityD:
		return true
	}
	return false
}

// Annotation provenance.
const (
	AnnotationSourceManual = "manual"
	AnnotationSourceModel  = "model"
	AnnotationSourceLegacy = "legacy"
)

func IsValidAnnotationSource(s string) bool {
	switch s {
	case AnnotationSourceManual, AnnotationSourceModel, AnnotationSourceLegacy:
		return true
	}
	return false
}

// Photo side labels (Thai, as stored by the mobile/web client).
const (
	SideLeft        = "ซ้าย"
	SideRight       = "ขวา"
	SideFront       = "หน้า"
	SideBack        = "หลัง"
	SideUnspecified = "ไม่ระบุ"
)

var ImageSides = []string{SideLeft, SideRight, SideFront, SideBack, SideUnspecified}

func IsValidImageSide(s string) bool {
	for _, v := range ImageSides {
		if s == v {
			return true
		}
	}
	return false
}
