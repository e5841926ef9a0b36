package mhaksa

// Course is one row of the lecture plan dataset. The json tags are the
// portal's short field codes, the bson tags are the canonical names the
// records are stored under. Storage identity is SubjectCode, unique
// within a category collection.
type Course struct {
	Duration                      float64 `json:"tm" bson:"duration"`
	CourseType                    string  `json:"submattFgEngNm" bson:"course_type"`
	ClassTime                     string  `json:"ltTmEngNm" bson:"class_time"`
	ClassNumber                   string  `json:"clssNo" bson:"class_number"`
	RecommendedYear               string  `json:"rcomShyrCdNm" bson:"recommended_year"`
	CourseCategory                string  `json:"sustLsnFgNm" bson:"course_category"`
	MainLecturerEmployeeNumber    string  `json:"maLecturerEmplNo" bson:"main_lecturer_employee_number"`
	AbeekPracticalPoints          float64 `json:"abeekInspPracPntCnt" bson:"abeek_practical_points"`
	FileName                      string  `json:"fileNm" bson:"file_name"`
	MainLecturerName              string  `json:"maLecturerEmplNm" bson:"main_lecturer_name"`
	CourseCategoryEnglish         string  `json:"sustLsnFgEngNm" bson:"course_category_english"`
	MajorCodeEnglish              string  `json:"mjCdEngNm" bson:"major_code_english"`
	DepartmentCode                string  `json:"sustCd" bson:"department_code"`
	PlanInputStatus               string  `json:"planInputYn" bson:"plan_input_status"`
	FilePath                      string  `json:"filePath" bson:"file_path"`
	AbeekTheoreticalPoints        float64 `json:"abeekTheoPntCnt" bson:"abeek_theoretical_points"`
	ClassroomEnglish              string  `json:"ltRoomEngNm" bson:"classroom_english"`
	EmployeeNumber                string  `json:"emplNo" bson:"employee_number"`
	DepartmentEnglish             string  `json:"sustCdEngNm" bson:"department_english"`
	CourseTypeKorean              string  `json:"submattFgNm" bson:"course_type_korean"`
	SubjectCode                   string  `json:"sbjtCd" bson:"subject_code"`
	MainOpenCourseNumber          string  `json:"mainOpenLtNo" bson:"main_open_course_number"`
	MajorCode                     string  `json:"mjCd" bson:"major_code"`
	MajorName                     string  `json:"mjCdNm" bson:"major_name"`
	Classroom                     string  `json:"ltRoomNm" bson:"classroom"`
	AbeePoint                     float64 `json:"abeePnt" bson:"abee_point"`
	SemesterCode                  string  `json:"shtmCd" bson:"semester_code"`
	MainLecturerEnglishName       string  `json:"maLecturerEmplEngNm" bson:"main_lecturer_english_name"`
	CourseCategoryCode            string  `json:"sustLsnFg" bson:"course_category_code"`
	OpenCourseNumber              string  `json:"openLtNo" bson:"open_course_number"`
	OriginalLanguageCourse        string  `json:"orgLangLtYn" bson:"original_language_course"`
	CqiStatus                     string  `json:"cqiYn" bson:"cqi_status"`
	CourseEvaluation              string  `json:"lsnApprDetailPop" bson:"course_evaluation"`
	SemesterName                  string  `json:"shtmNm" bson:"semester_name"`
	Year                          string  `json:"yy" bson:"year"`
	DepartmentName                string  `json:"sustCdNm" bson:"department_name"`
	EnglishGradeType              string  `json:"engGrdFgNm" bson:"english_grade_type"`
	AbeekDesignPoints             float64 `json:"abeekDgnPntCnt" bson:"abeek_design_points"`
	AbeekStatus                   string  `json:"abeekYn" bson:"abeek_status"`
	FileStatus                    string  `json:"fileFg" bson:"file_status"`
	SubjectKoreanName             string  `json:"sbjtKorNm" bson:"subject_korean_name"`
	LessonDocumentManagementClass string  `json:"lsnPdocMngtClssYn" bson:"lesson_document_management_class"`
	ClassTimeKorean               string  `json:"ltTmNm" bson:"class_time_korean"`
	RecommendedYearCode           string  `json:"rcomShyrCd" bson:"recommended_year_code"`
	LessonNumber                  string  `json:"tlsnNo" bson:"lesson_number"`
	ApprovedUnadapted             string  `json:"apprUnAdptYn" bson:"approved_unadapted"`
	CreditPoints                  float64 `json:"pnt" bson:"credit_points"`
	SubjectId                     string  `json:"sbjtId" bson:"subject_id"`
	SubjectEnglishName            string  `json:"sbjtEngNm" bson:"subject_english_name"`
	CooperativeOpenCourse         string  `json:"coopOpenLtYn" bson:"cooperative_open_course"`
	CooperativeCourse             string  `json:"coopLt" bson:"cooperative_course"`
	RowStatus                     int     `json:"rowStatus" bson:"row_status"`
	LectureTypeName               string  `json:"ltFgNm" bson:"lecture_type_name"`
}

type variableList struct {
	ErrorMsg  string `json:"ErrorMsg"`
	ErrorCode string `json:"ErrorCode"`
}

type datasetList struct {
	Courses []Course `json:"DS_COUR120"`
}

type courseResponse struct {
	VariableList variableList `json:"VariableList"`
	DatasetList  datasetList  `json:"DatasetList"`
}

// Category is one of the portal's fixed course buckets. Code goes into
// the fetch filter, Name into the collection name.
type Category struct {
	Code string
	Name string
}

var Categories = []Category{
	{Code: "U0209001", Name: "전공과목"},
	{Code: "U0209002", Name: "교양과목"},
	{Code: "U0209003", Name: "기초과목"},
	{Code: "U0209004", Name: "공학기초"},
	{Code: "U0209005", Name: "영역별교양"},
	{Code: "U0209006", Name: "학점교류"},
	{Code: "U0209029", Name: "일선과목"},
}
