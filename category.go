package dashdoc

import "strings"

// Category is a Dash docset entry type.
//
// The set is closed: the values mirror the entry types Dash understands
// (https://kapeli.com/docsets#supportedentrytypes) and new ones must not be
// invented. The zero value is not a valid category.
type Category uint8

// Supported categories.
const (
	categoryInvalid Category = iota
	EntryAnnotation
	EntryAttribute
	EntryBinding
	EntryBuiltin
	EntryCallback
	EntryCategory
	EntryClass
	EntryCommand
	EntryComponent
	EntryConstant
	EntryConstructor
	EntryDefine
	EntryDelegate
	EntryDiagram
	EntryDirective
	EntryElement
	EntryEntry
	EntryEnum
	EntryEnvironment
	EntryError
	EntryEvent
	EntryException
	EntryExtension
	EntryField
	EntryFile
	EntryFilter
	EntryFramework
	EntryFunction
	EntryGlobal
	EntryGuide
	EntryHook
	EntryInstance
	EntryInstruction
	EntryInterface
	EntryKeyword
	EntryLibrary
	EntryLiteral
	EntryMacro
	EntryMethod
	EntryMixin
	EntryModifier
	EntryModule
	EntryNamespace
	EntryNotation
	EntryObject
	EntryOperator
	EntryOption
	EntryPackage
	EntryParameter
	EntryPlugin
	EntryProcedure
	EntryProperty
	EntryProtocol
	EntryProvider
	EntryProvisioner
	EntryQuery
	EntryRecord
	EntryResource
	EntrySample
	EntrySection
	EntryService
	EntrySetting
	EntryShortcut
	EntryStatement
	EntryStruct
	EntryStyle
	EntrySubroutine
	EntryTag
	EntryTest
	EntryTrait
	EntryType
	EntryUnion
	EntryValue
	EntryVariable
	EntryWord

	categoryCount
)

// DefaultCategory is assigned to pages no rule matches.
const DefaultCategory = EntryGuide

var categoryNames = [categoryCount]string{
	EntryAnnotation:  "Annotation",
	EntryAttribute:   "Attribute",
	EntryBinding:     "Binding",
	EntryBuiltin:     "Builtin",
	EntryCallback:    "Callback",
	EntryCategory:    "Category",
	EntryClass:       "Class",
	EntryCommand:     "Command",
	EntryComponent:   "Component",
	EntryConstant:    "Constant",
	EntryConstructor: "Constructor",
	EntryDefine:      "Define",
	EntryDelegate:    "Delegate",
	EntryDiagram:     "Diagram",
	EntryDirective:   "Directive",
	EntryElement:     "Element",
	EntryEntry:       "Entry",
	EntryEnum:        "Enum",
	EntryEnvironment: "Environment",
	EntryError:       "Error",
	EntryEvent:       "Event",
	EntryException:   "Exception",
	EntryExtension:   "Extension",
	EntryField:       "Field",
	EntryFile:        "File",
	EntryFilter:      "Filter",
	EntryFramework:   "Framework",
	EntryFunction:    "Function",
	EntryGlobal:      "Global",
	EntryGuide:       "Guide",
	EntryHook:        "Hook",
	EntryInstance:    "Instance",
	EntryInstruction: "Instruction",
	EntryInterface:   "Interface",
	EntryKeyword:     "Keyword",
	EntryLibrary:     "Library",
	EntryLiteral:     "Literal",
	EntryMacro:       "Macro",
	EntryMethod:      "Method",
	EntryMixin:       "Mixin",
	EntryModifier:    "Modifier",
	EntryModule:      "Module",
	EntryNamespace:   "Namespace",
	EntryNotation:    "Notation",
	EntryObject:      "Object",
	EntryOperator:    "Operator",
	EntryOption:      "Option",
	EntryPackage:     "Package",
	EntryParameter:   "Parameter",
	EntryPlugin:      "Plugin",
	EntryProcedure:   "Procedure",
	EntryProperty:    "Property",
	EntryProtocol:    "Protocol",
	EntryProvider:    "Provider",
	EntryProvisioner: "Provisioner",
	EntryQuery:       "Query",
	EntryRecord:      "Record",
	EntryResource:    "Resource",
	EntrySample:      "Sample",
	EntrySection:     "Section",
	EntryService:     "Service",
	EntrySetting:     "Setting",
	EntryShortcut:    "Shortcut",
	EntryStatement:   "Statement",
	EntryStruct:      "Struct",
	EntryStyle:       "Style",
	EntrySubroutine:  "Subroutine",
	EntryTag:         "Tag",
	EntryTest:        "Test",
	EntryTrait:       "Trait",
	EntryType:        "Type",
	EntryUnion:       "Union",
	EntryValue:       "Value",
	EntryVariable:    "Variable",
	EntryWord:        "Word",
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c := Category(1); c < categoryCount; c++ {
		m[strings.ToLower(categoryNames[c])] = c
	}
	return m
}()

// String returns the name Dash uses for the category.
func (c Category) String() string {
	if !c.Valid() {
		return "Category(invalid)"
	}
	return categoryNames[c]
}

// Valid reports whether c is a member of the supported set.
func (c Category) Valid() bool {
	return c > categoryInvalid && c < categoryCount
}

// ParseCategory returns the category with the given name.
// Matching is case-insensitive. Returns EINVALID for unknown names.
func ParseCategory(name string) (Category, error) {
	if c, ok := categoriesByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return categoryInvalid, Errorf(EINVALID, "unknown entry type %q", name)
}

// Categories returns every supported category in declaration order.
func Categories() []Category {
	all := make([]Category, 0, categoryCount-1)
	for c := Category(1); c < categoryCount; c++ {
		all = append(all, c)
	}
	return all
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, Errorf(EINVALID, "invalid category %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
