package employee

func MapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		EmployeeID:       e.EmployeeID,
		Name:             e.Name,
		Email:            e.Email,
		Phone:            e.Phone,
		Role:             e.Role,
		Department:       e.Department,
		JoinDate:         e.JoinDate,
		Status:           string(e.Status),
		Address:          e.Address,
		EmergencyContact: e.EmergencyContact,
		Salary:           e.Salary,
		BirthDate:        e.BirthDate,
		Gender:           e.Gender,
		Education:        e.Education,
		Skills:           e.Skills,
	}
}

func MapToDetailResponse(e Employee) EmployeeDetailResponse {
	resp := EmployeeDetailResponse{
		EmployeeResponse: MapToResponse(e),
		Attendance:       make([]AttendanceRecordResponse, len(e.Attendance)),
		Payments:         make([]PaymentRecordResponse, len(e.Payments)),
	}
	for i, r := range e.Attendance {
		resp.Attendance[i] = MapAttendance(r)
	}
	for i, p := range e.Payments {
		resp.Payments[i] = MapPayment(p)
	}
	return resp
}

func MapAttendance(r AttendanceRecord) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		Date:         r.Date,
		Status:       string(r.Status),
		CheckInTime:  r.CheckInTime,
		CheckOutTime: r.CheckOutTime,
		Note:         r.Note,
	}
}

func MapPayment(p PaymentRecord) PaymentRecordResponse {
	resp := PaymentRecordResponse{
		ID:            p.ID,
		Date:          p.Date,
		Amount:        p.Amount,
		PaymentMode:   string(p.PaymentMode),
		Status:        string(p.Status),
		Description:   p.Description,
		TaxDeduction:  p.TaxDeduction,
		BonusAmount:   p.BonusAmount,
		OvertimeHours: p.OvertimeHours,
		OvertimeRate:  p.OvertimeRate,
	}
	if p.Period != nil {
		resp.Period = &PeriodResponse{From: p.Period.From, To: p.Period.To}
	}
	return resp
}
